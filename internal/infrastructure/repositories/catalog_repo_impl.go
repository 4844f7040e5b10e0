package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
	"github.com/abeer2626/sami-shops/internal/infrastructure/models"
	"github.com/abeer2626/sami-shops/pkg/utils"
)

// CategoryRepository implements category data operations
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	m := &models.Category{
		ID:        category.ID,
		Name:      category.Name,
		Slug:      category.Slug,
		CreatedAt: category.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	var m models.Category
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return categoryToEntity(&m), nil
}

// GetBySlug gets a category by slug
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	var m models.Category
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return categoryToEntity(&m), nil
}

// List lists all categories
func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	var categoryModels []models.Category
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entities.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, categoryToEntity(&categoryModels[i]))
	}
	return categories, nil
}

// Delete deletes a category
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func categoryToEntity(m *models.Category) *entities.Category {
	return &entities.Category{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		CreatedAt: m.CreatedAt,
	}
}

// ProductRepository implements product data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	m, err := productToModel(product)
	if err != nil {
		return err
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return productToEntity(&m)
}

// Update updates a product
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	imagesJSON, err := json.Marshal(product.Images)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"stock":       product.Stock,
		"images":      string(imagesJSON),
		"category_id": product.CategoryID,
		"updated_at":  time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).Where("id = ?", product.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a product
func (r *ProductRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists products matching the filter
func (r *ProductRepository) List(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.StoreID != nil {
		query = query.Where("store_id = ?", *filter.StoreID)
	}
	if filter.Search != "" {
		searchTerm := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", searchTerm, searchTerm)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}

	switch filter.Sort {
	case entities.ProductSortLowToHigh:
		query = query.Order("price ASC")
	case entities.ProductSortHighToLow:
		query = query.Order("price DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var productModels []models.Product
	if err := query.Find(&productModels).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*entities.Product, 0, len(productModels))
	for i := range productModels {
		p, err := productToEntity(&productModels[i])
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, nil
}

// DecrementStock atomically subtracts quantity from stock. The guard in
// the WHERE clause keeps stock from ever going negative, even under
// concurrent orders.
func (r *ProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]interface{}{
			"stock":      gorm.Expr("stock - ?", quantity),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInsufficientStock
	}
	return nil
}

// UpdateRatingStats overwrites the denormalized review aggregate
func (r *ProductRepository) UpdateRatingStats(ctx context.Context, id uuid.UUID, average float64, count int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"average_rating": average,
			"review_count":   count,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func productToModel(p *entities.Product) (*models.Product, error) {
	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return nil, err
	}
	return &models.Product{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Stock:         p.Stock,
		Images:        string(imagesJSON),
		CategoryID:    p.CategoryID,
		StoreID:       p.StoreID,
		AverageRating: p.AverageRating,
		ReviewCount:   p.ReviewCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}, nil
}

func productToEntity(m *models.Product) (*entities.Product, error) {
	var images []string
	if m.Images != "" {
		if err := json.Unmarshal([]byte(m.Images), &images); err != nil {
			return nil, err
		}
	}
	return &entities.Product{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Price:         m.Price,
		Stock:         m.Stock,
		Images:        images,
		CategoryID:    m.CategoryID,
		StoreID:       m.StoreID,
		AverageRating: m.AverageRating,
		ReviewCount:   m.ReviewCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}
