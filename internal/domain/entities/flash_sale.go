package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// FlashSale is a time-boxed discount window over a set of products
type FlashSale struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	StartsAt  time.Time           `json:"startsAt"`
	EndsAt    time.Time           `json:"endsAt"`
	IsActive  bool                `json:"isActive"`
	Products  []*FlashSaleProduct `json:"products,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// ActiveAt reports whether the sale window covers the given instant.
// Start is inclusive, end is exclusive.
func (f *FlashSale) ActiveAt(now time.Time) bool {
	return f.IsActive && !now.Before(f.StartsAt) && now.Before(f.EndsAt)
}

// FlashSaleProduct is one product's override price within a sale
type FlashSaleProduct struct {
	ID            uuid.UUID       `json:"id"`
	FlashSaleID   uuid.UUID       `json:"flashSaleId"`
	ProductID     uuid.UUID       `json:"productId"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	QuantityLimit null.Int        `json:"quantityLimit,omitempty"`
	SoldCount     int             `json:"soldCount"`
}

// Exhausted reports whether the entry's quantity cap has been reached
func (p *FlashSaleProduct) Exhausted() bool {
	return p.QuantityLimit.Valid && p.SoldCount >= p.QuantityLimit.Int
}

// FlashSaleProductInput represents one product entry in a sale
type FlashSaleProductInput struct {
	ProductID     uuid.UUID       `json:"productId" binding:"required"`
	SalePrice     decimal.Decimal `json:"salePrice" binding:"required"`
	QuantityLimit *int            `json:"quantityLimit"`
}

// CreateFlashSaleInput represents input for creating a flash sale
type CreateFlashSaleInput struct {
	Name     string                  `json:"name" binding:"required,min=2,max=100"`
	StartsAt time.Time               `json:"startsAt" binding:"required"`
	EndsAt   time.Time               `json:"endsAt" binding:"required"`
	IsActive bool                    `json:"isActive"`
	Products []FlashSaleProductInput `json:"products" binding:"dive"`
}

// UpdateFlashSaleInput represents partial input for updating a flash sale
type UpdateFlashSaleInput struct {
	Name     *string    `json:"name"`
	StartsAt *time.Time `json:"startsAt"`
	EndsAt   *time.Time `json:"endsAt"`
	IsActive *bool      `json:"isActive"`
}
