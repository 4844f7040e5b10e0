package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// OrderStatus represents the order lifecycle state
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderTransitions is the allowed forward transition per status.
// Cancelled is reachable from any non-terminal status.
var orderTransitions = map[OrderStatus]OrderStatus{
	OrderStatusPending:    OrderStatusPaid,
	OrderStatusPaid:       OrderStatusProcessing,
	OrderStatusProcessing: OrderStatusShipped,
	OrderStatusShipped:    OrderStatusDelivered,
}

// CanTransitionTo reports whether the status may move to next
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == OrderStatusDelivered || s == OrderStatusCancelled {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return orderTransitions[s] == next
}

// Valid reports whether the status is one of the known statuses
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Order represents a customer order
type Order struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"userId"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Status         OrderStatus     `json:"status"`
	PaymentStatus  PaymentStatus   `json:"paymentStatus"`
	TrackingNumber null.String     `json:"trackingNumber,omitempty"`
	Carrier        null.String     `json:"carrier,omitempty"`
	Items          []*OrderItem    `json:"items,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// OrderItem represents one order line. Price is the unit price snapshot
// frozen at order creation.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"orderId"`
	ProductID uuid.UUID       `json:"productId"`
	StoreID   uuid.UUID       `json:"storeId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderStatusHistory is an append-only audit row for a status change
type OrderStatusHistory struct {
	ID        uuid.UUID   `json:"id"`
	OrderID   uuid.UUID   `json:"orderId"`
	Status    OrderStatus `json:"status"`
	ChangedBy uuid.UUID   `json:"changedBy"`
	Notes     null.String `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// CreateOrderItemInput represents one requested order line
type CreateOrderItemInput struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderInput represents input for placing an order
type CreateOrderInput struct {
	Items []CreateOrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusInput represents input for a status transition
type UpdateOrderStatusInput struct {
	Status         string `json:"status" binding:"required"`
	Notes          string `json:"notes"`
	TrackingNumber string `json:"trackingNumber"`
	Carrier        string `json:"carrier"`
}
