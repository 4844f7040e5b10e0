package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]*entities.User, error)
}

// StoreRepository defines store data operations
type StoreRepository interface {
	Create(ctx context.Context, store *entities.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Store, error)
	GetByVendorID(ctx context.Context, vendorID uuid.UUID) (*entities.Store, error)
}
