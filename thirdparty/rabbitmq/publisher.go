package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

const (
	OrderExchange        = "order_events_exchange"
	OrderPlacedQueue     = "order_placed_queue"
	OrderPlacedRouteKey  = "order.placed"
	publishTimeout       = 3 * time.Second
	orderPlacedEventType = "OrderPlaced"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

type OrderPlacedItem struct {
	ProductID uint64          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Discount  decimal.Decimal `json:"discount"`
	Amount    decimal.Decimal `json:"amount"`
}

type OrderPlacedMessage struct {
	EventType   string            `json:"event_type"`
	OrderID     uint64            `json:"order_id"`
	UserID      uint64            `json:"user_id"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Items       []OrderPlacedItem `json:"items"`
	PlacedAt    time.Time         `json:"placed_at"`
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		OrderExchange, // name
		"direct",      // type
		true,          // durable
		false,         // auto-delete
		false,         // internal
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare %s: %w", OrderExchange, err)
	}

	_, err = channel.QueueDeclare(
		OrderPlacedQueue, // name
		true,             // durable
		false,            // auto-delete
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare %s: %w", OrderPlacedQueue, err)
	}

	err = channel.QueueBind(
		OrderPlacedQueue,    // queue name
		OrderPlacedRouteKey, // routing key
		OrderExchange,       // exchange
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("bind %s: %w", OrderPlacedQueue, err)
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// EncodeOrderPlaced stamps the event type and renders the message body.
func EncodeOrderPlaced(msg OrderPlacedMessage) ([]byte, error) {
	msg.EventType = orderPlacedEventType
	if msg.PlacedAt.IsZero() {
		msg.PlacedAt = time.Now().UTC()
	}
	return json.Marshal(msg)
}

func (p *Publisher) PublishOrderPlaced(ctx context.Context, msg OrderPlacedMessage) error {
	body, err := EncodeOrderPlaced(msg)
	if err != nil {
		return fmt.Errorf("marshal OrderPlaced: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.channel.PublishWithContext(
		pubCtx,
		OrderExchange,       // exchange
		OrderPlacedRouteKey, // routing key
		false,               // mandatory
		false,               // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
