package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
	"github.com/abeer2626/sami-shops/internal/domain/repositories"
	"github.com/abeer2626/sami-shops/pkg/logger"
	"github.com/abeer2626/sami-shops/pkg/utils"
	"go.uber.org/zap"
)

// EarningUsecase handles vendor earnings, payout requests and the
// platform commission rates
type EarningUsecase struct {
	earningRepo    repositories.EarningRepository
	payoutRepo     repositories.PayoutRepository
	commissionRepo repositories.CommissionRepository
	storeRepo      repositories.StoreRepository
	uow            repositories.UnitOfWork
}

// NewEarningUsecase creates a new earning usecase
func NewEarningUsecase(
	earningRepo repositories.EarningRepository,
	payoutRepo repositories.PayoutRepository,
	commissionRepo repositories.CommissionRepository,
	storeRepo repositories.StoreRepository,
	uow repositories.UnitOfWork,
) *EarningUsecase {
	return &EarningUsecase{
		earningRepo:    earningRepo,
		payoutRepo:     payoutRepo,
		commissionRepo: commissionRepo,
		storeRepo:      storeRepo,
		uow:            uow,
	}
}

// ListVendorEarnings lists the caller's earnings, newest first
func (u *EarningUsecase) ListVendorEarnings(ctx context.Context, vendorID uuid.UUID) ([]*entities.VendorEarning, error) {
	store, err := u.vendorStore(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return u.earningRepo.ListByStore(ctx, store.ID)
}

// GetEarningsSummary returns the caller's earnings totals per status
func (u *EarningUsecase) GetEarningsSummary(ctx context.Context, vendorID uuid.UUID) (*entities.EarningsSummary, error) {
	store, err := u.vendorStore(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	summary := &entities.EarningsSummary{}
	for _, pair := range []struct {
		status entities.EarningStatus
		target *decimal.Decimal
	}{
		{entities.EarningStatusPending, &summary.Pending},
		{entities.EarningStatusAvailable, &summary.Available},
		{entities.EarningStatusPaid, &summary.Paid},
	} {
		sum, err := u.earningRepo.SumByStoreAndStatus(ctx, store.ID, pair.status)
		if err != nil {
			return nil, err
		}
		*pair.target = sum
	}
	return summary, nil
}

// RequestPayout creates a payout request and consumes available
// earnings oldest first until they cover the requested amount. The
// consumed earnings move to paid and are stamped with the payout so a
// later rejection can restore exactly them.
func (u *EarningUsecase) RequestPayout(ctx context.Context, vendorID uuid.UUID, input *entities.RequestPayoutInput) (*entities.VendorPayout, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerrors.BadRequest("payout amount must be positive")
	}

	store, err := u.vendorStore(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	var payout *entities.VendorPayout
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		available, err := u.earningRepo.SumByStoreAndStatus(txCtx, store.ID, entities.EarningStatusAvailable)
		if err != nil {
			return err
		}
		if available.LessThan(input.Amount) {
			return domainerrors.NewAppError(400, "requested amount exceeds available earnings", domainerrors.ErrInsufficientEarnings)
		}

		earnings, err := u.earningRepo.ListByStoreAndStatus(txCtx, store.ID, entities.EarningStatusAvailable)
		if err != nil {
			return err
		}

		covered := decimal.Zero
		var consumed []uuid.UUID
		for _, earning := range earnings {
			if covered.GreaterThanOrEqual(input.Amount) {
				break
			}
			covered = covered.Add(earning.VendorAmount)
			consumed = append(consumed, earning.ID)
		}

		now := time.Now()
		payout = &entities.VendorPayout{
			ID:        utils.GenerateUUIDv7(),
			StoreID:   store.ID,
			Amount:    input.Amount,
			Status:    entities.PayoutStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := u.payoutRepo.Create(txCtx, payout); err != nil {
			return err
		}
		return u.earningRepo.MarkPaid(txCtx, consumed, payout.ID)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "payout requested",
		zap.String("payout_id", payout.ID.String()),
		zap.String("store_id", store.ID.String()),
		zap.String("amount", payout.Amount.String()),
	)
	return payout, nil
}

// ListVendorPayouts lists the caller's payout requests
func (u *EarningUsecase) ListVendorPayouts(ctx context.Context, vendorID uuid.UUID) ([]*entities.VendorPayout, error) {
	store, err := u.vendorStore(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return u.payoutRepo.ListByStore(ctx, store.ID)
}

// ListAllPayouts lists every payout request for admin review
func (u *EarningUsecase) ListAllPayouts(ctx context.Context) ([]*entities.VendorPayout, error) {
	return u.payoutRepo.List(ctx)
}

// UpdatePayoutStatus applies an admin decision to a pending payout.
// Rejection restores the earnings the payout had consumed back to
// available, in the same transaction as the payout update.
func (u *EarningUsecase) UpdatePayoutStatus(ctx context.Context, payoutID uuid.UUID, input *entities.UpdatePayoutStatusInput) (*entities.VendorPayout, error) {
	next := entities.PayoutStatus(input.Status)
	switch next {
	case entities.PayoutStatusCompleted, entities.PayoutStatusRejected, entities.PayoutStatusFailed:
	default:
		return nil, domainerrors.BadRequest("unknown payout status")
	}

	payout, err := u.payoutRepo.GetByID(ctx, payoutID)
	if err != nil {
		return nil, err
	}
	if payout.Status != entities.PayoutStatusPending {
		return nil, domainerrors.BadRequest("payout has already been processed")
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		payout.Status = next
		payout.ProcessedAt = null.TimeFrom(time.Now())
		if input.Notes != "" {
			payout.Notes = null.StringFrom(input.Notes)
		}
		if err := u.payoutRepo.Update(txCtx, payout); err != nil {
			return err
		}
		if next == entities.PayoutStatusRejected || next == entities.PayoutStatusFailed {
			return u.earningRepo.RestoreByPayout(txCtx, payout.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "payout processed",
		zap.String("payout_id", payout.ID.String()),
		zap.String("status", string(next)),
	)
	return payout, nil
}

// CreateCommission creates a commission rate. Making it the default
// clears the flag from every other rate first.
func (u *EarningUsecase) CreateCommission(ctx context.Context, input *entities.CreateCommissionInput) (*entities.Commission, error) {
	if input.Rate.IsNegative() || input.Rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, domainerrors.BadRequest("commission rate must be between 0 and 1")
	}

	now := time.Now()
	commission := &entities.Commission{
		ID:        utils.GenerateUUIDv7(),
		Name:      input.Name,
		Rate:      input.Rate,
		IsDefault: input.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if input.IsDefault {
			if err := u.commissionRepo.ClearDefaults(txCtx); err != nil {
				return err
			}
		}
		return u.commissionRepo.Create(txCtx, commission)
	})
	if err != nil {
		return nil, err
	}
	return commission, nil
}

// ListCommissions lists all commission rates
func (u *EarningUsecase) ListCommissions(ctx context.Context) ([]*entities.Commission, error) {
	return u.commissionRepo.List(ctx)
}

// SetDefaultCommission makes the given rate the single default
func (u *EarningUsecase) SetDefaultCommission(ctx context.Context, id uuid.UUID) (*entities.Commission, error) {
	commission, err := u.commissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.commissionRepo.ClearDefaults(txCtx); err != nil {
			return err
		}
		commission.IsDefault = true
		return u.commissionRepo.Update(txCtx, commission)
	})
	if err != nil {
		return nil, err
	}
	return commission, nil
}

// DeleteCommission removes a commission rate. The default rate cannot
// be deleted while it is the default.
func (u *EarningUsecase) DeleteCommission(ctx context.Context, id uuid.UUID) error {
	commission, err := u.commissionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if commission.IsDefault {
		return domainerrors.BadRequest("cannot delete the default commission rate")
	}
	return u.commissionRepo.Delete(ctx, id)
}

func (u *EarningUsecase) vendorStore(ctx context.Context, vendorID uuid.UUID) (*entities.Store, error) {
	store, err := u.storeRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("vendor has no store")
		}
		return nil, err
	}
	return store, nil
}
