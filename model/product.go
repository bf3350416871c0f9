package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product mirrors the products table.
type Product struct {
	ID          uint64          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Supplier    string          `db:"supplier" json:"supplier"`
	Model       string          `db:"model" json:"model"`
	ProductCode string          `db:"productCode" json:"productCode"`
	Color       string          `db:"color" json:"color"`
	Price       decimal.Decimal `db:"price" json:"price" swaggertype:"string" example:"120.50"`
	Image       string          `db:"image" json:"image"`
	Description string          `db:"description" json:"description"`
	Discount    *string         `db:"discount" json:"discount"`
	IsActive    bool            `db:"isActive" json:"isActive"`
	IsDelete    bool            `db:"isDelete" json:"isDelete"`
	CreatedAt   time.Time       `db:"createdAt" json:"createdAt"`
	CreatedBy   uint64          `db:"createdBy" json:"createdBy"`
	UpdatedAt   *time.Time      `db:"updatedAt" json:"updatedAt"`
	UpdatedBy   *uint64         `db:"updatedBy" json:"updatedBy"`
}

type ProductListResponse struct {
	BaseResponse
	Products []Product `json:"products"`
}
