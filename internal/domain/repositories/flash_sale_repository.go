package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
)

// FlashSaleRepository defines flash sale data operations
type FlashSaleRepository interface {
	// Create inserts the sale together with its product entries.
	Create(ctx context.Context, sale *entities.FlashSale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.FlashSale, error)
	List(ctx context.Context) ([]*entities.FlashSale, error)
	// ListActive returns sales whose window covers the given instant and
	// whose active flag is set, product entries included.
	ListActive(ctx context.Context, now time.Time) ([]*entities.FlashSale, error)
	Update(ctx context.Context, sale *entities.FlashSale) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ActiveEntryForProduct returns the product's entry in a currently
	// active sale, or ErrNotFound when no active sale covers it.
	ActiveEntryForProduct(ctx context.Context, productID uuid.UUID, now time.Time) (*entities.FlashSaleProduct, error)
	IncrementSold(ctx context.Context, entryID uuid.UUID, quantity int) error
}
