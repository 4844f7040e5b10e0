package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Store represents a vendor's storefront. One store per vendor.
type Store struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description,omitempty"`
	VendorID    uuid.UUID   `json:"vendorId"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CreateStoreInput represents input for opening a store
type CreateStoreInput struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description"`
}
