package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
)

// OrderRepository defines order data operations
type OrderRepository interface {
	// Create inserts the order together with its items.
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error)
	// ListByStore returns orders containing at least one item from the store.
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entities.Order, error)
	Update(ctx context.Context, order *entities.Order) error

	AppendStatusHistory(ctx context.Context, entry *entities.OrderStatusHistory) error
	ListStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*entities.OrderStatusHistory, error)

	// UserHasPurchased reports whether any of the user's orders contains
	// the product.
	UserHasPurchased(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	// ListSalesByStore returns the store's order lines joined with their
	// order and product, newest order first. Feeds the vendor report.
	ListSalesByStore(ctx context.Context, storeID uuid.UUID) ([]*entities.StoreSale, error)
}
