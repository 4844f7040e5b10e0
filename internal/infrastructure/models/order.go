package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric;not null"`
	Status         string          `gorm:"type:varchar(50);not null;default:'pending'"`
	PaymentStatus  string          `gorm:"type:varchar(50);not null;default:'unpaid'"`
	TrackingNumber *string         `gorm:"type:varchar(100)"`
	Carrier        *string         `gorm:"type:varchar(100)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null"`
	StoreID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric;not null"`
}

type OrderStatusHistory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Status    string    `gorm:"type:varchar(50);not null"`
	ChangedBy uuid.UUID `gorm:"type:uuid;not null"`
	Notes     *string   `gorm:"type:text"`
	CreatedAt time.Time
}
