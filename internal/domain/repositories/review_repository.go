package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
)

// ReviewRepository defines review data operations
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Review, error)
	GetByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entities.Review, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entities.Review, error)
	Update(ctx context.Context, review *entities.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MessageRepository defines message data operations
type MessageRepository interface {
	Create(ctx context.Context, message *entities.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Message, error)
	// ListByUser returns messages the user sent or received, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}
