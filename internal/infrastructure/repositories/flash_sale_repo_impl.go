package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
	"github.com/abeer2626/sami-shops/internal/infrastructure/models"
)

// FlashSaleRepository implements flash sale data operations
type FlashSaleRepository struct {
	db *gorm.DB
}

// NewFlashSaleRepository creates a new flash sale repository
func NewFlashSaleRepository(db *gorm.DB) *FlashSaleRepository {
	return &FlashSaleRepository{db: db}
}

// Create inserts the sale together with its product entries
func (r *FlashSaleRepository) Create(ctx context.Context, sale *entities.FlashSale) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	m := &models.FlashSale{
		ID:        sale.ID,
		Name:      sale.Name,
		StartsAt:  sale.StartsAt,
		EndsAt:    sale.EndsAt,
		IsActive:  sale.IsActive,
		CreatedAt: sale.CreatedAt,
		UpdatedAt: sale.UpdatedAt,
	}
	if err := db.Create(m).Error; err != nil {
		return err
	}

	for _, p := range sale.Products {
		pm := &models.FlashSaleProduct{
			ID:          p.ID,
			FlashSaleID: sale.ID,
			ProductID:   p.ProductID,
			SalePrice:   p.SalePrice,
			SoldCount:   p.SoldCount,
		}
		if p.QuantityLimit.Valid {
			limit := p.QuantityLimit.Int
			pm.QuantityLimit = &limit
		}
		if err := db.Create(pm).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID gets a sale with its product entries
func (r *FlashSaleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.FlashSale, error) {
	var m models.FlashSale
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	sale := flashSaleToEntity(&m)
	products, err := r.listEntries(ctx, id)
	if err != nil {
		return nil, err
	}
	sale.Products = products
	return sale, nil
}

// List lists all sales with their product entries, newest first
func (r *FlashSaleRepository) List(ctx context.Context) ([]*entities.FlashSale, error) {
	var saleModels []models.FlashSale
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("starts_at DESC").Find(&saleModels).Error; err != nil {
		return nil, err
	}
	return r.attachEntries(ctx, saleModels)
}

// ListActive lists sales whose window covers the given instant
func (r *FlashSaleRepository) ListActive(ctx context.Context, now time.Time) ([]*entities.FlashSale, error) {
	var saleModels []models.FlashSale
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("is_active = ? AND starts_at <= ? AND ends_at > ?", true, now, now).
		Order("starts_at ASC").
		Find(&saleModels).Error
	if err != nil {
		return nil, err
	}
	return r.attachEntries(ctx, saleModels)
}

// Update updates a sale's window, name and active flag
func (r *FlashSaleRepository) Update(ctx context.Context, sale *entities.FlashSale) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.FlashSale{}).
		Where("id = ?", sale.ID).
		Updates(map[string]interface{}{
			"name":       sale.Name,
			"starts_at":  sale.StartsAt,
			"ends_at":    sale.EndsAt,
			"is_active":  sale.IsActive,
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

// Delete deletes a sale and its product entries
func (r *FlashSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Delete(&models.FlashSale{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return db.Delete(&models.FlashSaleProduct{}, "flash_sale_id = ?", id).Error
}

// ActiveEntryForProduct returns the product's entry in a currently active sale
func (r *FlashSaleRepository) ActiveEntryForProduct(ctx context.Context, productID uuid.UUID, now time.Time) (*entities.FlashSaleProduct, error) {
	var m models.FlashSaleProduct
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.FlashSaleProduct{}).
		Joins("JOIN flash_sales ON flash_sales.id = flash_sale_products.flash_sale_id").
		Where("flash_sale_products.product_id = ?", productID).
		Where("flash_sales.is_active = ? AND flash_sales.starts_at <= ? AND flash_sales.ends_at > ?", true, now, now).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return flashSaleProductToEntity(&m), nil
}

// IncrementSold adds quantity to an entry's sold counter
func (r *FlashSaleRepository) IncrementSold(ctx context.Context, entryID uuid.UUID, quantity int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.FlashSaleProduct{}).
		Where("id = ?", entryID).
		Update("sold_count", gorm.Expr("sold_count + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *FlashSaleRepository) attachEntries(ctx context.Context, saleModels []models.FlashSale) ([]*entities.FlashSale, error) {
	sales := make([]*entities.FlashSale, 0, len(saleModels))
	for i := range saleModels {
		sale := flashSaleToEntity(&saleModels[i])
		products, err := r.listEntries(ctx, sale.ID)
		if err != nil {
			return nil, err
		}
		sale.Products = products
		sales = append(sales, sale)
	}
	return sales, nil
}

func (r *FlashSaleRepository) listEntries(ctx context.Context, saleID uuid.UUID) ([]*entities.FlashSaleProduct, error) {
	var entryModels []models.FlashSaleProduct
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("flash_sale_id = ?", saleID).Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*entities.FlashSaleProduct, 0, len(entryModels))
	for i := range entryModels {
		entries = append(entries, flashSaleProductToEntity(&entryModels[i]))
	}
	return entries, nil
}

func flashSaleToEntity(m *models.FlashSale) *entities.FlashSale {
	return &entities.FlashSale{
		ID:        m.ID,
		Name:      m.Name,
		StartsAt:  m.StartsAt,
		EndsAt:    m.EndsAt,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func flashSaleProductToEntity(m *models.FlashSaleProduct) *entities.FlashSaleProduct {
	return &entities.FlashSaleProduct{
		ID:            m.ID,
		FlashSaleID:   m.FlashSaleID,
		ProductID:     m.ProductID,
		SalePrice:     m.SalePrice,
		QuantityLimit: null.IntFromPtr(m.QuantityLimit),
		SoldCount:     m.SoldCount,
	}
}
