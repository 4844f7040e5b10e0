package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// EarningStatus represents the lifecycle of a vendor earning
type EarningStatus string

const (
	EarningStatusPending   EarningStatus = "pending"
	EarningStatusAvailable EarningStatus = "available"
	EarningStatusPaid      EarningStatus = "paid"
)

// VendorEarning is the vendor's share of one (order, store) pair.
// commissionAmount + vendorAmount always equals orderAmount.
type VendorEarning struct {
	ID               uuid.UUID       `json:"id"`
	OrderID          uuid.UUID       `json:"orderId"`
	StoreID          uuid.UUID       `json:"storeId"`
	OrderAmount      decimal.Decimal `json:"orderAmount"`
	CommissionRate   decimal.Decimal `json:"commissionRate"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	VendorAmount     decimal.Decimal `json:"vendorAmount"`
	Status           EarningStatus   `json:"status"`
	PayoutID         uuid.NullUUID   `json:"payoutId,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// EarningsSummary aggregates a store's earnings per status
type EarningsSummary struct {
	Pending   decimal.Decimal `json:"pending"`
	Available decimal.Decimal `json:"available"`
	Paid      decimal.Decimal `json:"paid"`
}

// PayoutStatus represents the lifecycle of a payout request
type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusCompleted PayoutStatus = "completed"
	PayoutStatusRejected  PayoutStatus = "rejected"
	PayoutStatusFailed    PayoutStatus = "failed"
)

// VendorPayout is a vendor's withdrawal request against available earnings
type VendorPayout struct {
	ID          uuid.UUID       `json:"id"`
	StoreID     uuid.UUID       `json:"storeId"`
	Amount      decimal.Decimal `json:"amount"`
	Status      PayoutStatus    `json:"status"`
	Notes       null.String     `json:"notes,omitempty"`
	ProcessedAt null.Time       `json:"processedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// RequestPayoutInput represents input for a payout request
type RequestPayoutInput struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// UpdatePayoutStatusInput represents input for an admin payout decision
type UpdatePayoutStatusInput struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// Commission is a named platform commission rate. Exactly one row may be
// flagged default.
type Commission struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	IsDefault bool            `json:"isDefault"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CreateCommissionInput represents input for creating a commission rate
type CreateCommissionInput struct {
	Name      string          `json:"name" binding:"required,min=2,max=100"`
	Rate      decimal.Decimal `json:"rate" binding:"required"`
	IsDefault bool            `json:"isDefault"`
}
