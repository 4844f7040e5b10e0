package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
)

// EarningRepository defines vendor earning data operations
type EarningRepository interface {
	CreateBatch(ctx context.Context, earnings []*entities.VendorEarning) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entities.VendorEarning, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entities.VendorEarning, error)
	// ListByStoreAndStatus returns earnings oldest first, which is the
	// order payouts consume them in.
	ListByStoreAndStatus(ctx context.Context, storeID uuid.UUID, status entities.EarningStatus) ([]*entities.VendorEarning, error)
	SumByStoreAndStatus(ctx context.Context, storeID uuid.UUID, status entities.EarningStatus) (decimal.Decimal, error)
	// MarkPaid flips the given earnings to paid and stamps them with the
	// payout that consumed them.
	MarkPaid(ctx context.Context, ids []uuid.UUID, payoutID uuid.UUID) error
	// UpdateStatusByOrder moves all of an order's earnings from one
	// status to another.
	UpdateStatusByOrder(ctx context.Context, orderID uuid.UUID, from, to entities.EarningStatus) error
	// RestoreByPayout returns earnings consumed by a rejected payout to
	// available and clears their payout stamp.
	RestoreByPayout(ctx context.Context, payoutID uuid.UUID) error
}

// PayoutRepository defines payout data operations
type PayoutRepository interface {
	Create(ctx context.Context, payout *entities.VendorPayout) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.VendorPayout, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entities.VendorPayout, error)
	List(ctx context.Context) ([]*entities.VendorPayout, error)
	Update(ctx context.Context, payout *entities.VendorPayout) error
}

// CommissionRepository defines commission rate data operations
type CommissionRepository interface {
	Create(ctx context.Context, commission *entities.Commission) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Commission, error)
	GetDefault(ctx context.Context) (*entities.Commission, error)
	List(ctx context.Context) ([]*entities.Commission, error)
	Update(ctx context.Context, commission *entities.Commission) error
	// ClearDefaults removes the default flag from every commission row.
	ClearDefaults(ctx context.Context) error
	Delete(ctx context.Context, id uuid.UUID) error
}
