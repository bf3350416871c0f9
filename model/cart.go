package model

import "github.com/shopspring/decimal"

// CartLine mirrors the carts table. A nil Status means the line is still open.
type CartLine struct {
	ID            uint64          `db:"id"`
	Status        *string         `db:"status"`
	UserID        uint64          `db:"userId"`
	ProductID     uint64          `db:"productId"`
	TotalQuantity int64           `db:"totalQuantity"`
	TotalPrice    decimal.Decimal `db:"totalPrice"`
	TotalDiscount decimal.Decimal `db:"totalDiscount"`
	TotalAmount   decimal.Decimal `db:"totalAmount"`
}

// IsOpen reports whether the line has not been ordered yet.
func (c *CartLine) IsOpen() bool {
	return c.Status == nil
}

type InsertCartTxItem struct {
	UserID        uint64
	ProductID     uint64
	TotalQuantity int64
	TotalPrice    decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalAmount   decimal.Decimal
}

// CartDetail is the contact snapshot stored next to a new cart line.
type CartDetail struct {
	CartID  uint64
	Contact Contact
}

type AddToCartRequest struct {
	ProductID       uint64          `json:"productId" label:"Product" validate:"required"`
	ProductQuantity int64           `json:"productQuantity" label:"Product Quantity" validate:"gte=0"`
	TotalPrice      decimal.Decimal `json:"totalPrice" swaggertype:"string" example:"120.50"`
	TotalDiscount   decimal.Decimal `json:"totalDiscount" swaggertype:"string" example:"0"`
	TotalAmount     decimal.Decimal `json:"totalAmount" swaggertype:"string" example:"120.50"`
	Method          string          `json:"method" label:"Method" validate:"omitempty,oneof=increment decrement"`
}

type UpdateCartQtyRequest struct {
	ID             uint64 `json:"id" label:"Cart" validate:"required"`
	UpdateQuantity *int64 `json:"updateQuantity" label:"Update Quantity" validate:"required,gte=0"`
}

type DeleteCartRequest struct {
	ID uint64 `json:"id" label:"Cart" validate:"required"`
}

// CartItem is one open cart line joined with its product.
type CartItem struct {
	ID            uint64              `db:"id" json:"id"`
	TotalQuantity int64               `db:"totalQuantity" json:"totalQuantity"`
	Price         decimal.NullDecimal `db:"price" json:"price" swaggertype:"string"`
	TotalAmount   decimal.Decimal     `db:"totalAmount" json:"totalAmount" swaggertype:"string"`
	ProductID     *uint64             `db:"productId" json:"productId"`
	ProductName   *string             `db:"productName" json:"productName"`
	ProductModel  *string             `db:"productModel" json:"productModel"`
}

type CartCountResponse struct {
	BaseResponse
	NumCartedItem int64 `json:"numCartedItem"`
}

type CartItemsResponse struct {
	BaseResponse
	Products   []CartItem      `json:"products"`
	TotalPrice decimal.Decimal `json:"totalPrice" swaggertype:"string"`
}
