package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	"github.com/abeer2626/sami-shops/internal/interfaces/http/middleware"
	"github.com/abeer2626/sami-shops/internal/interfaces/http/response"
)

type messageService interface {
	SendMessage(ctx context.Context, senderID uuid.UUID, senderRole entities.UserRole, input *entities.SendMessageInput) (*entities.Message, error)
	ListMessages(ctx context.Context, userID uuid.UUID) ([]*entities.Message, error)
	MarkMessageRead(ctx context.Context, userID, messageID uuid.UUID) (*entities.Message, error)
}

// MessageHandler handles direct message endpoints
type MessageHandler struct {
	messageUsecase messageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageUsecase messageService) *MessageHandler {
	return &MessageHandler{messageUsecase: messageUsecase}
}

// SendMessage sends a message to another user
// POST /api/v1/messages
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var input entities.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	message, err := h.messageUsecase.SendMessage(c.Request.Context(), userID, role, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, message)
}

// ListMessages lists the caller's conversation history
// GET /api/v1/messages
func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	messages, err := h.messageUsecase.ListMessages(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, messages)
}

// MarkRead marks a received message as read
// PATCH /api/v1/messages/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid message id")
		return
	}

	userID, _ := middleware.GetUserID(c)
	message, err := h.messageUsecase.MarkMessageRead(c.Request.Context(), userID, messageID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, message)
}
