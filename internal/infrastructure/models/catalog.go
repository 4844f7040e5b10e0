package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Slug      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time
}

type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:numeric;not null"`
	Stock         int             `gorm:"not null;default:0"`
	Images        string          `gorm:"type:text"` // JSON-encoded list of URLs
	CategoryID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	StoreID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	AverageRating float64         `gorm:"not null;default:0"`
	ReviewCount   int             `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
