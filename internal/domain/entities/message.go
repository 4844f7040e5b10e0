package entities

import (
	"time"

	"github.com/google/uuid"
)

// Message is a directed note between two users, optionally about a product
type Message struct {
	ID         uuid.UUID     `json:"id"`
	SenderID   uuid.UUID     `json:"senderId"`
	ReceiverID uuid.UUID     `json:"receiverId"`
	ProductID  uuid.NullUUID `json:"productId,omitempty"`
	Content    string        `json:"content"`
	IsRead     bool          `json:"isRead"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// SendMessageInput represents input for sending a message
type SendMessageInput struct {
	ReceiverID uuid.UUID  `json:"receiverId" binding:"required"`
	ProductID  *uuid.UUID `json:"productId"`
	Content    string     `json:"content" binding:"required,min=1,max=2000"`
}

// CanMessage reports whether the sender role may message the receiver
// role. Customers and vendors may talk to each other, admins to anyone;
// customer-to-customer traffic is not allowed.
func CanMessage(sender, receiver UserRole) bool {
	if sender == UserRoleAdmin || receiver == UserRoleAdmin {
		return true
	}
	return sender != receiver
}
