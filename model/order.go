package model

import (
	"github.com/mnmsi/Lara-api/constant"
	"github.com/shopspring/decimal"
)

// PlaceOrderRequest is the submitOrder body. The per product maps are keyed
// by product id, not by position in ProductIDs.
type PlaceOrderRequest struct {
	ProductIDs          []uint64                   `json:"productIdArr" label:"Products" validate:"required,min=1"`
	ProductQuantities   map[uint64]int64           `json:"productQuantityArr"`
	ProductPrices       map[uint64]decimal.Decimal `json:"productPriceArr"`
	ProductDiscounts    map[uint64]decimal.Decimal `json:"productDiscountArr"`
	ProductTotalAmounts map[uint64]decimal.Decimal `json:"productTotalAmountArr"`
	TotalQuantity       int64                      `json:"totalQuantity" label:"Total Quantity" validate:"gte=0"`
	TotalPrice          decimal.Decimal            `json:"totalPrice" swaggertype:"string"`
	TotalDiscount       decimal.Decimal            `json:"totalDiscount" swaggertype:"string"`
	TotalAmount         decimal.Decimal            `json:"totalAmount" swaggertype:"string"`
}

type InsertOrderTxItem struct {
	UserID        uint64
	Status        constant.OrderStatus
	Contact       Contact
	TotalQuantity int64
	TotalPrice    decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalAmount   decimal.Decimal
}

type OrderDetail struct {
	OrderID         uint64          `db:"orderId"`
	ProductID       uint64          `db:"productId"`
	ProductQuantity int64           `db:"productQuantity"`
	ProductPrice    decimal.Decimal `db:"productPrice"`
	ProductDiscount decimal.Decimal `db:"productDiscount"`
	TotalAmount     decimal.Decimal `db:"totalAmount"`
}

type PlaceOrderResponse struct {
	BaseResponse
	OrderID uint64 `json:"orderId"`
}
