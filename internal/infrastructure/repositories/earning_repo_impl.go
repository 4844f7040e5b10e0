package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
	"github.com/abeer2626/sami-shops/internal/infrastructure/models"
)

// EarningRepository implements vendor earning data operations
type EarningRepository struct {
	db *gorm.DB
}

// NewEarningRepository creates a new earning repository
func NewEarningRepository(db *gorm.DB) *EarningRepository {
	return &EarningRepository{db: db}
}

// CreateBatch inserts a set of earning rows
func (r *EarningRepository) CreateBatch(ctx context.Context, earnings []*entities.VendorEarning) error {
	db := GetDB(ctx, r.db).WithContext(ctx)
	for _, e := range earnings {
		m := &models.VendorEarning{
			ID:               e.ID,
			OrderID:          e.OrderID,
			StoreID:          e.StoreID,
			OrderAmount:      e.OrderAmount,
			CommissionRate:   e.CommissionRate,
			CommissionAmount: e.CommissionAmount,
			VendorAmount:     e.VendorAmount,
			Status:           string(e.Status),
			CreatedAt:        e.CreatedAt,
			UpdatedAt:        e.UpdatedAt,
		}
		if err := db.Create(m).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListByOrder lists an order's earnings
func (r *EarningRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entities.VendorEarning, error) {
	var earningModels []models.VendorEarning
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("order_id = ?", orderID).Order("created_at ASC").Find(&earningModels).Error; err != nil {
		return nil, err
	}
	return earningsToEntities(earningModels), nil
}

// ListByStore lists a store's earnings, newest first
func (r *EarningRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entities.VendorEarning, error) {
	var earningModels []models.VendorEarning
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("store_id = ?", storeID).Order("created_at DESC").Find(&earningModels).Error; err != nil {
		return nil, err
	}
	return earningsToEntities(earningModels), nil
}

// ListByStoreAndStatus lists a store's earnings in one status, oldest
// first (payout consumption order)
func (r *EarningRepository) ListByStoreAndStatus(ctx context.Context, storeID uuid.UUID, status entities.EarningStatus) ([]*entities.VendorEarning, error) {
	var earningModels []models.VendorEarning
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("store_id = ? AND status = ?", storeID, string(status)).Order("created_at ASC").Find(&earningModels).Error; err != nil {
		return nil, err
	}
	return earningsToEntities(earningModels), nil
}

// SumByStoreAndStatus sums vendor amounts for a store and status
func (r *EarningRepository) SumByStoreAndStatus(ctx context.Context, storeID uuid.UUID, status entities.EarningStatus) (decimal.Decimal, error) {
	earnings, err := r.ListByStoreAndStatus(ctx, storeID, status)
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, e := range earnings {
		sum = sum.Add(e.VendorAmount)
	}
	return sum, nil
}

// MarkPaid flips the given earnings to paid, stamped with the consuming payout
func (r *EarningRepository) MarkPaid(ctx context.Context, ids []uuid.UUID, payoutID uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.VendorEarning{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":     string(entities.EarningStatusPaid),
			"payout_id":  payoutID,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != int64(len(ids)) {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatusByOrder moves all of an order's earnings from one status to another
func (r *EarningRepository) UpdateStatusByOrder(ctx context.Context, orderID uuid.UUID, from, to entities.EarningStatus) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.VendorEarning{}).
		Where("order_id = ? AND status = ?", orderID, string(from)).
		Updates(map[string]interface{}{
			"status":     string(to),
			"updated_at": time.Now(),
		}).Error
}

// RestoreByPayout returns a rejected payout's earnings to available
func (r *EarningRepository) RestoreByPayout(ctx context.Context, payoutID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.VendorEarning{}).
		Where("payout_id = ?", payoutID).
		Updates(map[string]interface{}{
			"status":     string(entities.EarningStatusAvailable),
			"payout_id":  nil,
			"updated_at": time.Now(),
		}).Error
}

func earningsToEntities(earningModels []models.VendorEarning) []*entities.VendorEarning {
	earnings := make([]*entities.VendorEarning, 0, len(earningModels))
	for i := range earningModels {
		m := &earningModels[i]
		e := &entities.VendorEarning{
			ID:               m.ID,
			OrderID:          m.OrderID,
			StoreID:          m.StoreID,
			OrderAmount:      m.OrderAmount,
			CommissionRate:   m.CommissionRate,
			CommissionAmount: m.CommissionAmount,
			VendorAmount:     m.VendorAmount,
			Status:           entities.EarningStatus(m.Status),
			CreatedAt:        m.CreatedAt,
			UpdatedAt:        m.UpdatedAt,
		}
		if m.PayoutID != nil {
			e.PayoutID = uuid.NullUUID{UUID: *m.PayoutID, Valid: true}
		}
		earnings = append(earnings, e)
	}
	return earnings
}

// PayoutRepository implements payout data operations
type PayoutRepository struct {
	db *gorm.DB
}

// NewPayoutRepository creates a new payout repository
func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

// Create creates a new payout
func (r *PayoutRepository) Create(ctx context.Context, payout *entities.VendorPayout) error {
	m := &models.VendorPayout{
		ID:        payout.ID,
		StoreID:   payout.StoreID,
		Amount:    payout.Amount,
		Status:    string(payout.Status),
		Notes:     payout.Notes.Ptr(),
		CreatedAt: payout.CreatedAt,
		UpdatedAt: payout.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a payout by ID
func (r *PayoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VendorPayout, error) {
	var m models.VendorPayout
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return payoutToEntity(&m), nil
}

// ListByStore lists a store's payouts, newest first
func (r *PayoutRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entities.VendorPayout, error) {
	var payoutModels []models.VendorPayout
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("store_id = ?", storeID).Order("created_at DESC").Find(&payoutModels).Error; err != nil {
		return nil, err
	}
	return payoutsToEntities(payoutModels), nil
}

// List lists all payouts, newest first
func (r *PayoutRepository) List(ctx context.Context) ([]*entities.VendorPayout, error) {
	var payoutModels []models.VendorPayout
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC").Find(&payoutModels).Error; err != nil {
		return nil, err
	}
	return payoutsToEntities(payoutModels), nil
}

// Update updates a payout's status, notes and processed timestamp
func (r *PayoutRepository) Update(ctx context.Context, payout *entities.VendorPayout) error {
	updates := map[string]interface{}{
		"status":     string(payout.Status),
		"updated_at": time.Now(),
	}
	if payout.Notes.Valid {
		updates["notes"] = payout.Notes.String
	}
	if payout.ProcessedAt.Valid {
		updates["processed_at"] = payout.ProcessedAt.Time
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.VendorPayout{}).Where("id = ?", payout.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func payoutToEntity(m *models.VendorPayout) *entities.VendorPayout {
	return &entities.VendorPayout{
		ID:          m.ID,
		StoreID:     m.StoreID,
		Amount:      m.Amount,
		Status:      entities.PayoutStatus(m.Status),
		Notes:       null.StringFromPtr(m.Notes),
		ProcessedAt: null.TimeFromPtr(m.ProcessedAt),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func payoutsToEntities(payoutModels []models.VendorPayout) []*entities.VendorPayout {
	payouts := make([]*entities.VendorPayout, 0, len(payoutModels))
	for i := range payoutModels {
		payouts = append(payouts, payoutToEntity(&payoutModels[i]))
	}
	return payouts
}

// CommissionRepository implements commission rate data operations
type CommissionRepository struct {
	db *gorm.DB
}

// NewCommissionRepository creates a new commission repository
func NewCommissionRepository(db *gorm.DB) *CommissionRepository {
	return &CommissionRepository{db: db}
}

// Create creates a new commission rate
func (r *CommissionRepository) Create(ctx context.Context, commission *entities.Commission) error {
	m := &models.Commission{
		ID:        commission.ID,
		Name:      commission.Name,
		Rate:      commission.Rate,
		IsDefault: commission.IsDefault,
		CreatedAt: commission.CreatedAt,
		UpdatedAt: commission.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a commission by ID
func (r *CommissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Commission, error) {
	var m models.Commission
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return commissionToEntity(&m), nil
}

// GetDefault gets the commission flagged default
func (r *CommissionRepository) GetDefault(ctx context.Context) (*entities.Commission, error) {
	var m models.Commission
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("is_default = ?", true).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return commissionToEntity(&m), nil
}

// List lists all commission rates
func (r *CommissionRepository) List(ctx context.Context) ([]*entities.Commission, error) {
	var commissionModels []models.Commission
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("created_at ASC").Find(&commissionModels).Error; err != nil {
		return nil, err
	}

	commissions := make([]*entities.Commission, 0, len(commissionModels))
	for i := range commissionModels {
		commissions = append(commissions, commissionToEntity(&commissionModels[i]))
	}
	return commissions, nil
}

// Update updates a commission rate
func (r *CommissionRepository) Update(ctx context.Context, commission *entities.Commission) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Commission{}).
		Where("id = ?", commission.ID).
		Updates(map[string]interface{}{
			"name":       commission.Name,
			"rate":       commission.Rate,
			"is_default": commission.IsDefault,
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

// ClearDefaults removes the default flag from every commission row
func (r *CommissionRepository) ClearDefaults(ctx context.Context) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Commission{}).
		Where("is_default = ?", true).
		Updates(map[string]interface{}{
			"is_default": false,
			"updated_at": time.Now(),
		}).Error
}

// Delete deletes a commission rate
func (r *CommissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Commission{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func commissionToEntity(m *models.Commission) *entities.Commission {
	return &entities.Commission{
		ID:        m.ID,
		Name:      m.Name,
		Rate:      m.Rate,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
