package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	"github.com/abeer2626/sami-shops/pkg/utils"
)

// CategoryRepository defines category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Category, error)
	List(ctx context.Context) ([]*entities.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error)

	// DecrementStock atomically subtracts quantity from stock, failing
	// with ErrInsufficientStock when the row has less than quantity left.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// UpdateRatingStats overwrites the denormalized review aggregate.
	UpdateRatingStats(ctx context.Context, id uuid.UUID, average float64, count int) error
}
