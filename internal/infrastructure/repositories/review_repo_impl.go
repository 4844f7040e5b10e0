package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
	"github.com/abeer2626/sami-shops/internal/infrastructure/models"
)

// ReviewRepository implements review data operations
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create creates a new review
func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	m := &models.Review{
		ID:        review.ID,
		UserID:    review.UserID,
		ProductID: review.ProductID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Verified:  review.Verified,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Review, error) {
	var m models.Review
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return reviewToEntity(&m), nil
}

// GetByUserAndProduct gets the user's review of a product
func (r *ReviewRepository) GetByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entities.Review, error) {
	var m models.Review
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ? AND product_id = ?", userID, productID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return reviewToEntity(&m), nil
}

// ListByProduct lists a product's reviews, newest first
func (r *ReviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entities.Review, error) {
	var reviewModels []models.Review
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("product_id = ?", productID).Order("created_at DESC").Find(&reviewModels).Error; err != nil {
		return nil, err
	}

	reviews := make([]*entities.Review, 0, len(reviewModels))
	for i := range reviewModels {
		reviews = append(reviews, reviewToEntity(&reviewModels[i]))
	}
	return reviews, nil
}

// Update updates a review's rating and comment
func (r *ReviewRepository) Update(ctx context.Context, review *entities.Review) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"rating":     review.Rating,
			"comment":    review.Comment,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete deletes a review
func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func reviewToEntity(m *models.Review) *entities.Review {
	return &entities.Review{
		ID:        m.ID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Rating:    m.Rating,
		Comment:   m.Comment,
		Verified:  m.Verified,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MessageRepository implements message data operations
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create creates a new message
func (r *MessageRepository) Create(ctx context.Context, message *entities.Message) error {
	m := &models.Message{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		IsRead:     message.IsRead,
		CreatedAt:  message.CreatedAt,
	}
	if message.ProductID.Valid {
		pid := message.ProductID.UUID
		m.ProductID = &pid
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a message by ID
func (r *MessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Message, error) {
	var m models.Message
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return messageToEntity(&m), nil
}

// ListByUser lists messages the user sent or received, newest first
func (r *MessageRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Message, error) {
	var messageModels []models.Message
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("sender_id = ? OR receiver_id = ?", userID, userID).Order("created_at DESC").Find(&messageModels).Error; err != nil {
		return nil, err
	}

	messages := make([]*entities.Message, 0, len(messageModels))
	for i := range messageModels {
		messages = append(messages, messageToEntity(&messageModels[i]))
	}
	return messages, nil
}

// MarkRead marks a message as read
func (r *MessageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func messageToEntity(m *models.Message) *entities.Message {
	msg := &entities.Message{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
	}
	if m.ProductID != nil {
		msg.ProductID = uuid.NullUUID{UUID: *m.ProductID, Valid: true}
	}
	return msg
}
