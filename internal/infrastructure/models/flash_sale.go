package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FlashSale struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	StartsAt  time.Time `gorm:"not null"`
	EndsAt    time.Time `gorm:"not null"`
	IsActive  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type FlashSaleProduct struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FlashSaleID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	SalePrice     decimal.Decimal `gorm:"type:numeric;not null"`
	QuantityLimit *int
	SoldCount     int `gorm:"not null;default:0"`
}
