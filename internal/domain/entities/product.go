package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog product
type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	Images        []string        `json:"images"`
	CategoryID    uuid.UUID       `json:"categoryId"`
	StoreID       uuid.UUID       `json:"storeId"`
	AverageRating float64         `json:"averageRating"`
	ReviewCount   int             `json:"reviewCount"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CreateProductInput represents input for creating a product
type CreateProductInput struct {
	Name        string          `json:"name" binding:"required,min=2,max=200"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock" binding:"gte=0"`
	Images      []string        `json:"images"`
	CategoryID  uuid.UUID       `json:"categoryId" binding:"required"`
}

// UpdateProductInput represents partial input for updating a product
type UpdateProductInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Images      []string         `json:"images"`
	CategoryID  *uuid.UUID       `json:"categoryId"`
}

// ProductSort enumerates the supported listing orders
type ProductSort string

const (
	ProductSortNewest    ProductSort = "newest"
	ProductSortLowToHigh ProductSort = "low_to_high"
	ProductSortHighToLow ProductSort = "high_to_low"
)

// ProductFilter holds catalog listing filters
type ProductFilter struct {
	CategoryID *uuid.UUID
	StoreID    *uuid.UUID
	Search     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       ProductSort
}
