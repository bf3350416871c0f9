package order

import (
	"context"
	"fmt"
	"time"

	"github.com/mnmsi/Lara-api/constant"
	"github.com/mnmsi/Lara-api/model"
	cartrepo "github.com/mnmsi/Lara-api/repository/cart"
	orderrepo "github.com/mnmsi/Lara-api/repository/order"
	txrepo "github.com/mnmsi/Lara-api/repository/tx"
	userrepo "github.com/mnmsi/Lara-api/repository/user"
	"github.com/mnmsi/Lara-api/thirdparty/rabbitmq"
	"github.com/mnmsi/Lara-api/utils/errors"
	"github.com/mnmsi/Lara-api/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	PlaceOrder(ctx context.Context, userID uint64, req *model.PlaceOrderRequest) (*model.PlaceOrderResponse, error)
}

// EventPublisher announces committed orders. *rabbitmq.Publisher implements it.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, msg rabbitmq.OrderPlacedMessage) error
}

type orderAppImpl struct {
	txRepo    txrepo.TxRepository
	orderRepo orderrepo.OrderRepository
	cartRepo  cartrepo.CartRepository
	userRepo  userrepo.UserRepository
	publisher EventPublisher
}

// NewOrderApp wires the checkout flow. publisher may be nil.
func NewOrderApp(txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, cartRepo cartrepo.CartRepository, userRepo userrepo.UserRepository, publisher EventPublisher) OrderApp {
	return &orderAppImpl{txRepo: txRepo, orderRepo: orderRepo, cartRepo: cartRepo, userRepo: userRepo, publisher: publisher}
}

// PlaceOrder writes one order, one detail per product id, and closes the
// matching open cart lines, all in a single transaction.
//
// There is no idempotency key: a retried submit creates a second order.
func (s *orderAppImpl) PlaceOrder(ctx context.Context, userID uint64, req *model.PlaceOrderRequest) (*model.PlaceOrderResponse, error) {
	details, err := buildDetails(req)
	if err != nil {
		return nil, errors.NewCustomError(constant.ErrInvalidRequest, err.Error())
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[PlaceOrder] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgOrderFailed)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[PlaceOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgOrderFailed)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, &model.InsertOrderTxItem{
		UserID:        userID,
		Status:        constant.OrderStatusProcessing,
		Contact:       user.Contact(),
		TotalQuantity: req.TotalQuantity,
		TotalPrice:    req.TotalPrice,
		TotalDiscount: req.TotalDiscount,
		TotalAmount:   req.TotalAmount,
	})
	if err != nil {
		logger.Error("[PlaceOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgOrderFailed)
	}

	for i := range details {
		details[i].OrderID = orderID
		if err := s.orderRepo.InsertOrderDetailTx(ctx, tx, &details[i]); err != nil {
			logger.Error("[PlaceOrder] insert order detail", zap.Uint64("product_id", details[i].ProductID), zap.String("error", err.Error()))
			return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgOrderFailed)
		}

		if _, err := s.cartRepo.MarkOrderedTx(ctx, tx, userID, details[i].ProductID); err != nil {
			logger.Error("[PlaceOrder] mark cart ordered", zap.Uint64("product_id", details[i].ProductID), zap.String("error", err.Error()))
			return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgOrderFailed)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[PlaceOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgOrderFailed)
	}
	committed = true

	s.publishPlaced(ctx, orderID, userID, req, details)

	return &model.PlaceOrderResponse{
		BaseResponse: model.Success(constant.MsgOrderPlaced),
		OrderID:      orderID,
	}, nil
}

// buildDetails resolves every product id against the per product maps.
func buildDetails(req *model.PlaceOrderRequest) ([]model.OrderDetail, error) {
	if len(req.ProductIDs) == 0 {
		return nil, fmt.Errorf("%s", constant.MsgOrderFailed)
	}

	details := make([]model.OrderDetail, 0, len(req.ProductIDs))
	for _, productID := range req.ProductIDs {
		qty, okQty := req.ProductQuantities[productID]
		price, okPrice := req.ProductPrices[productID]
		discount, okDiscount := req.ProductDiscounts[productID]
		amount, okAmount := req.ProductTotalAmounts[productID]
		if !okQty || !okPrice || !okDiscount || !okAmount {
			return nil, fmt.Errorf("%s %d", constant.MsgOrderMissingValues, productID)
		}
		details = append(details, model.OrderDetail{
			ProductID:       productID,
			ProductQuantity: qty,
			ProductPrice:    price,
			ProductDiscount: discount,
			TotalAmount:     amount,
		})
	}
	return details, nil
}

func (s *orderAppImpl) publishPlaced(ctx context.Context, orderID, userID uint64, req *model.PlaceOrderRequest, details []model.OrderDetail) {
	if s.publisher == nil {
		return
	}

	items := make([]rabbitmq.OrderPlacedItem, 0, len(details))
	for _, d := range details {
		items = append(items, rabbitmq.OrderPlacedItem{
			ProductID: d.ProductID,
			Quantity:  d.ProductQuantity,
			Price:     d.ProductPrice,
			Discount:  d.ProductDiscount,
			Amount:    d.TotalAmount,
		})
	}

	msg := rabbitmq.OrderPlacedMessage{
		OrderID:     orderID,
		UserID:      userID,
		TotalAmount: req.TotalAmount,
		Items:       items,
		PlacedAt:    time.Now().UTC(),
	}
	if err := s.publisher.PublishOrderPlaced(ctx, msg); err != nil {
		logger.Error("[PlaceOrder] publish order placed", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
	}
}
