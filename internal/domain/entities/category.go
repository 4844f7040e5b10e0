package entities

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a product category
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCategoryInput represents input for creating a category
type CreateCategoryInput struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
	Slug string `json:"slug" binding:"required,min=2,max=100"`
}
