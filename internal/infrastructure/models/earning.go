package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VendorEarning struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	StoreID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	OrderAmount      decimal.Decimal `gorm:"type:numeric;not null"`
	CommissionRate   decimal.Decimal `gorm:"type:numeric;not null"`
	CommissionAmount decimal.Decimal `gorm:"type:numeric;not null"`
	VendorAmount     decimal.Decimal `gorm:"type:numeric;not null"`
	Status           string          `gorm:"type:varchar(50);not null;default:'pending'"`
	PayoutID         *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type VendorPayout struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null"`
	Status      string          `gorm:"type:varchar(50);not null;default:'pending'"`
	Notes       *string         `gorm:"type:text"`
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Commission struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Rate      decimal.Decimal `gorm:"type:numeric;not null"`
	IsDefault bool            `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
