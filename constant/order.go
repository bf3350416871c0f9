package constant

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
)
