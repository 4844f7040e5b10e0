package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
	"github.com/abeer2626/sami-shops/internal/domain/repositories"
	"github.com/abeer2626/sami-shops/pkg/utils"
)

// MessageUsecase handles direct messages between users
type MessageUsecase struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
}

// NewMessageUsecase creates a new message usecase
func NewMessageUsecase(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
) *MessageUsecase {
	return &MessageUsecase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// SendMessage sends a message to another user. The role pair has to be
// allowed: peers of the same non-admin role cannot message each other.
func (u *MessageUsecase) SendMessage(ctx context.Context, senderID uuid.UUID, senderRole entities.UserRole, input *entities.SendMessageInput) (*entities.Message, error) {
	if input.ReceiverID == senderID {
		return nil, domainerrors.BadRequest("cannot message yourself")
	}

	receiver, err := u.userRepo.GetByID(ctx, input.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !entities.CanMessage(senderRole, receiver.Role) {
		return nil, domainerrors.Forbidden("messaging between these roles is not allowed")
	}

	message := &entities.Message{
		ID:         utils.GenerateUUIDv7(),
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
		CreatedAt:  time.Now(),
	}
	if input.ProductID != nil {
		if _, err := u.productRepo.GetByID(ctx, *input.ProductID); err != nil {
			return nil, err
		}
		message.ProductID = uuid.NullUUID{UUID: *input.ProductID, Valid: true}
	}

	if err := u.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListMessages lists messages the caller sent or received, newest first
func (u *MessageUsecase) ListMessages(ctx context.Context, userID uuid.UUID) ([]*entities.Message, error) {
	return u.messageRepo.ListByUser(ctx, userID)
}

// MarkMessageRead marks a message read. Only its receiver may do so.
func (u *MessageUsecase) MarkMessageRead(ctx context.Context, userID, messageID uuid.UUID) (*entities.Message, error) {
	message, err := u.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message.ReceiverID != userID {
		return nil, domainerrors.Forbidden("only the receiver can mark a message read")
	}

	if err := u.messageRepo.MarkRead(ctx, messageID); err != nil {
		return nil, err
	}
	message.IsRead = true
	return message, nil
}
