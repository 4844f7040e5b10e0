package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
	"github.com/abeer2626/sami-shops/internal/domain/repositories"
	"github.com/abeer2626/sami-shops/pkg/utils"
)

// CatalogUsecase handles category, store and product management
type CatalogUsecase struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
	storeRepo    repositories.StoreRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(
	categoryRepo repositories.CategoryRepository,
	productRepo repositories.ProductRepository,
	storeRepo repositories.StoreRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		storeRepo:    storeRepo,
	}
}

// CreateCategory creates a category with a unique slug
func (u *CatalogUsecase) CreateCategory(ctx context.Context, input *entities.CreateCategoryInput) (*entities.Category, error) {
	if _, err := u.categoryRepo.GetBySlug(ctx, input.Slug); err == nil {
		return nil, domainerrors.BadRequest("category slug already exists")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	category := &entities.Category{
		ID:        utils.GenerateUUIDv7(),
		Name:      input.Name,
		Slug:      input.Slug,
		CreatedAt: time.Now(),
	}
	if err := u.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lists all categories
func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	return u.categoryRepo.List(ctx)
}

// DeleteCategory deletes a category
func (u *CatalogUsecase) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return u.categoryRepo.Delete(ctx, id)
}

// CreateStore opens the vendor's store. One store per vendor.
func (u *CatalogUsecase) CreateStore(ctx context.Context, vendorID uuid.UUID, input *entities.CreateStoreInput) (*entities.Store, error) {
	if _, err := u.storeRepo.GetByVendorID(ctx, vendorID); err == nil {
		return nil, domainerrors.BadRequest("vendor already has a store")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	store := &entities.Store{
		ID:        utils.GenerateUUIDv7(),
		Name:      input.Name,
		VendorID:  vendorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Description != "" {
		store.Description = null.StringFrom(input.Description)
	}

	if err := u.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// GetStore returns the vendor's store
func (u *CatalogUsecase) GetStore(ctx context.Context, vendorID uuid.UUID) (*entities.Store, error) {
	return u.storeRepo.GetByVendorID(ctx, vendorID)
}

// CreateProduct creates a product in the vendor's store
func (u *CatalogUsecase) CreateProduct(ctx context.Context, vendorID uuid.UUID, input *entities.CreateProductInput) (*entities.Product, error) {
	store, err := u.storeRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("vendor has no store")
		}
		return nil, err
	}

	if _, err := u.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("category not found")
		}
		return nil, err
	}

	if input.Price.IsNegative() {
		return nil, domainerrors.BadRequest("price must not be negative")
	}

	now := time.Now()
	product := &entities.Product{
		ID:          utils.GenerateUUIDv7(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Images:      input.Images,
		CategoryID:  input.CategoryID,
		StoreID:     store.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies a partial update to the vendor's own product
func (u *CatalogUsecase) UpdateProduct(ctx context.Context, vendorID, productID uuid.UUID, input *entities.UpdateProductInput) (*entities.Product, error) {
	product, err := u.ownedProduct(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, domainerrors.BadRequest("price must not be negative")
		}
		product.Price = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, domainerrors.BadRequest("stock must not be negative")
		}
		product.Stock = *input.Stock
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.CategoryID != nil {
		if _, err := u.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.BadRequest("category not found")
			}
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the vendor's own product
func (u *CatalogUsecase) DeleteProduct(ctx context.Context, vendorID, productID uuid.UUID) error {
	if _, err := u.ownedProduct(ctx, vendorID, productID); err != nil {
		return err
	}
	return u.productRepo.SoftDelete(ctx, productID)
}

// ListProducts lists catalog products matching the filter, along with
// the unpaginated total
func (u *CatalogUsecase) ListProducts(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error) {
	return u.productRepo.List(ctx, filter, pagination)
}

// GetProduct gets a product by ID
func (u *CatalogUsecase) GetProduct(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

// ListVendorProducts lists the vendor's own products; empty when the
// vendor has no store yet
func (u *CatalogUsecase) ListVendorProducts(ctx context.Context, vendorID uuid.UUID) ([]*entities.Product, error) {
	store, err := u.storeRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return []*entities.Product{}, nil
		}
		return nil, err
	}
	products, _, err := u.productRepo.List(ctx, entities.ProductFilter{StoreID: &store.ID}, utils.PaginationParams{Page: 1, Limit: 0})
	return products, err
}

// SearchProducts searches products by substring on name and description
func (u *CatalogUsecase) SearchProducts(ctx context.Context, query string) ([]*entities.Product, error) {
	products, _, err := u.productRepo.List(ctx, entities.ProductFilter{Search: query}, utils.PaginationParams{Page: 1, Limit: 0})
	return products, err
}

func (u *CatalogUsecase) ownedProduct(ctx context.Context, vendorID, productID uuid.UUID) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	store, err := u.storeRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Forbidden("product belongs to another store")
		}
		return nil, err
	}
	if product.StoreID != store.ID {
		return nil, domainerrors.Forbidden("product belongs to another store")
	}
	return product, nil
}
