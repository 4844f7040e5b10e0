package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_product"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	Verified  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Message struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SenderID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	ReceiverID uuid.UUID  `gorm:"type:uuid;index;not null"`
	ProductID  *uuid.UUID `gorm:"type:uuid"`
	Content    string     `gorm:"type:text;not null"`
	IsRead     bool       `gorm:"not null;default:false"`
	CreatedAt  time.Time
}
