package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
)

func seedEarning(t *testing.T, repo *EarningRepository, storeID, orderID uuid.UUID, vendorAmount string, status entities.EarningStatus, createdAt time.Time) *entities.VendorEarning {
	t.Helper()
	amount := decimal.RequireFromString(vendorAmount)
	earning := &entities.VendorEarning{
		ID:               uuid.New(),
		OrderID:          orderID,
		StoreID:          storeID,
		OrderAmount:      amount.Div(decimal.RequireFromString("0.9")).Round(2),
		CommissionRate:   decimal.RequireFromString("0.10"),
		CommissionAmount: amount.Div(decimal.RequireFromString("9")).Round(2),
		VendorAmount:     amount,
		Status:           status,
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}
	require.NoError(t, repo.CreateBatch(context.Background(), []*entities.VendorEarning{earning}))
	return earning
}

func TestEarningRepository_ListAndSum(t *testing.T) {
	db := newTestDB(t)
	createEarningTables(t, db)
	repo := NewEarningRepository(db)
	ctx := context.Background()

	storeID := uuid.New()
	orderID := uuid.New()
	base := time.Now().Add(-time.Hour)
	first := seedEarning(t, repo, storeID, orderID, "9.00", entities.EarningStatusAvailable, base)
	second := seedEarning(t, repo, storeID, uuid.New(), "18.00", entities.EarningStatusAvailable, base.Add(time.Minute))
	seedEarning(t, repo, storeID, uuid.New(), "4.50", entities.EarningStatusPending, base.Add(2*time.Minute))
	seedEarning(t, repo, uuid.New(), uuid.New(), "90.00", entities.EarningStatusAvailable, base)

	available, err := repo.ListByStoreAndStatus(ctx, storeID, entities.EarningStatusAvailable)
	require.NoError(t, err)
	require.Len(t, available, 2)
	require.Equal(t, first.ID, available[0].ID)
	require.Equal(t, second.ID, available[1].ID)

	sum, err := repo.SumByStoreAndStatus(ctx, storeID, entities.EarningStatusAvailable)
	require.NoError(t, err)
	require.True(t, sum.Equal(decimal.RequireFromString("27.00")))

	byOrder, err := repo.ListByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, byOrder, 1)
	require.Equal(t, first.ID, byOrder[0].ID)

	byStore, err := repo.ListByStore(ctx, storeID)
	require.NoError(t, err)
	require.Len(t, byStore, 3)
}

func TestEarningRepository_MarkPaidAndRestore(t *testing.T) {
	db := newTestDB(t)
	createEarningTables(t, db)
	repo := NewEarningRepository(db)
	ctx := context.Background()

	storeID := uuid.New()
	first := seedEarning(t, repo, storeID, uuid.New(), "9.00", entities.EarningStatusAvailable, time.Now())
	second := seedEarning(t, repo, storeID, uuid.New(), "18.00", entities.EarningStatusAvailable, time.Now())

	payoutID := uuid.New()
	require.NoError(t, repo.MarkPaid(ctx, []uuid.UUID{first.ID, second.ID}, payoutID))

	paid, err := repo.ListByStoreAndStatus(ctx, storeID, entities.EarningStatusPaid)
	require.NoError(t, err)
	require.Len(t, paid, 2)
	for _, e := range paid {
		require.True(t, e.PayoutID.Valid)
		require.Equal(t, payoutID, e.PayoutID.UUID)
	}

	err = repo.MarkPaid(ctx, []uuid.UUID{uuid.New()}, payoutID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, repo.RestoreByPayout(ctx, payoutID))
	restored, err := repo.ListByStoreAndStatus(ctx, storeID, entities.EarningStatusAvailable)
	require.NoError(t, err)
	require.Len(t, restored, 2)
	for _, e := range restored {
		require.False(t, e.PayoutID.Valid)
	}
}

func TestEarningRepository_UpdateStatusByOrder(t *testing.T) {
	db := newTestDB(t)
	createEarningTables(t, db)
	repo := NewEarningRepository(db)
	ctx := context.Background()

	storeID := uuid.New()
	orderID := uuid.New()
	seedEarning(t, repo, storeID, orderID, "9.00", entities.EarningStatusPending, time.Now())
	other := seedEarning(t, repo, storeID, uuid.New(), "18.00", entities.EarningStatusPending, time.Now())

	require.NoError(t, repo.UpdateStatusByOrder(ctx, orderID, entities.EarningStatusPending, entities.EarningStatusAvailable))

	available, err := repo.ListByStoreAndStatus(ctx, storeID, entities.EarningStatusAvailable)
	require.NoError(t, err)
	require.Len(t, available, 1)

	pending, err := repo.ListByStoreAndStatus(ctx, storeID, entities.EarningStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, other.ID, pending[0].ID)
}

func TestPayoutRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	createEarningTables(t, db)
	repo := NewPayoutRepository(db)
	ctx := context.Background()

	storeID := uuid.New()
	payout := &entities.VendorPayout{
		ID:        uuid.New(),
		StoreID:   storeID,
		Amount:    decimal.RequireFromString("27.00"),
		Status:    entities.PayoutStatusPending,
		CreatedAt: time.Now().Add(-time.Minute),
		UpdatedAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, repo.Create(ctx, payout))

	later := &entities.VendorPayout{
		ID:        uuid.New(),
		StoreID:   storeID,
		Amount:    decimal.RequireFromString("5.00"),
		Status:    entities.PayoutStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, later))

	got, err := repo.GetByID(ctx, payout.ID)
	require.NoError(t, err)
	require.Equal(t, storeID, got.StoreID)
	require.True(t, got.Amount.Equal(decimal.RequireFromString("27.00")))
	require.False(t, got.Notes.Valid)

	byStore, err := repo.ListByStore(ctx, storeID)
	require.NoError(t, err)
	require.Len(t, byStore, 2)
	require.Equal(t, later.ID, byStore[0].ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	payout.Status = entities.PayoutStatusCompleted
	payout.Notes = null.StringFrom("wired via bank transfer")
	payout.ProcessedAt = null.TimeFrom(time.Now())
	require.NoError(t, repo.Update(ctx, payout))

	got, err = repo.GetByID(ctx, payout.ID)
	require.NoError(t, err)
	require.Equal(t, entities.PayoutStatusCompleted, got.Status)
	require.Equal(t, "wired via bank transfer", got.Notes.String)
	require.True(t, got.ProcessedAt.Valid)

	missing := &entities.VendorPayout{ID: uuid.New(), Status: entities.PayoutStatusFailed}
	require.ErrorIs(t, repo.Update(ctx, missing), domainerrors.ErrNotFound)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCommissionRepository_DefaultHandling(t *testing.T) {
	db := newTestDB(t)
	createEarningTables(t, db)
	repo := NewCommissionRepository(db)
	ctx := context.Background()

	_, err := repo.GetDefault(ctx)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	standard := &entities.Commission{
		ID:        uuid.New(),
		Name:      "Standard",
		Rate:      decimal.RequireFromString("0.10"),
		IsDefault: true,
		CreatedAt: time.Now().Add(-time.Minute),
		UpdatedAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, repo.Create(ctx, standard))

	premium := &entities.Commission{
		ID:        uuid.New(),
		Name:      "Premium",
		Rate:      decimal.RequireFromString("0.05"),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, premium))

	def, err := repo.GetDefault(ctx)
	require.NoError(t, err)
	require.Equal(t, standard.ID, def.ID)

	require.NoError(t, repo.ClearDefaults(ctx))
	premium.IsDefault = true
	require.NoError(t, repo.Update(ctx, premium))

	def, err = repo.GetDefault(ctx)
	require.NoError(t, err)
	require.Equal(t, premium.ID, def.ID)
	require.True(t, def.Rate.Equal(decimal.RequireFromString("0.05")))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Standard", all[0].Name)

	require.NoError(t, repo.Delete(ctx, standard.ID))
	require.ErrorIs(t, repo.Delete(ctx, standard.ID), domainerrors.ErrNotFound)

	_, err = repo.GetByID(ctx, standard.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
