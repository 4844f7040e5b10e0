package usecases

import (
	"context"
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

// FlashSaleUsecase handles admin management of flash sales and the
// public active-sale listing
type FlashSaleUsecase struct {
	flashSaleRepo repositories.FlashSaleRepository
	productRepo   repositories.ProductRepository
}

// NewFlashSaleUsecase creates a new flash sale usecase
func NewFlashSaleUsecase(flashSaleRepo repositories.FlashSaleRepository, productRepo repositories.ProductRepository) *FlashSaleUsecase {
	return &FlashSaleUsecase{flashSaleRepo: flashSaleRepo, productRepo: productRepo}
}

// CreateFlashSale creates a sale with its product entries
func (u *FlashSaleUsecase) CreateFlashSale(ctx context.Context, input *entities.CreateFlashSaleInput) (*entities.FlashSale, error) {
	if !input.EndsAt.After(input.StartsAt) {
		return nil, domainerrors.BadRequest("sale must end after it starts")
	}

	now := time.Now()
	sale := &entities.FlashSale{
		ID:        utils.GenerateUUIDv7(),
		Name:      input.Name,
		StartsAt:  input.StartsAt,
		EndsAt:    input.EndsAt,
		IsActive:  input.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, p := range input.Products {
		if _, err := u.productRepo.GetByID(ctx, p.ProductID); err != nil {
			return nil, err
		}
		if p.SalePrice.LessThanOrEqual(decimal.Zero) {
			return nil, domainerrors.BadRequest("sale price must be positive")
		}
		entry := &entities.FlashSaleProduct{
			ID:          utils.GenerateUUIDv7(),
			FlashSaleID: sale.ID,
			ProductID:   p.ProductID,
			SalePrice:   p.SalePrice,
		}
		if p.QuantityLimit != nil {
			if *p.QuantityLimit <= 0 {
				return nil, domainerrors.BadRequest("quantity limit must be positive")
			}
			entry.QuantityLimit = null.IntFrom(*p.QuantityLimit)
		}
		sale.Products = append(sale.Products, entry)
	}

	if err := u.flashSaleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	logger.Info(ctx, "flash sale created",
		zap.String("flash_sale_id", sale.ID.String()),
		zap.String("name", sale.Name),
	)
	return sale, nil
}

// GetFlashSale returns one sale with its product entries
func (u *FlashSaleUsecase) GetFlashSale(ctx context.Context, id uuid.UUID) (*entities.FlashSale, error) {
	return u.flashSaleRepo.GetByID(ctx, id)
}

// ListFlashSales lists every sale for admin management
func (u *FlashSaleUsecase) ListFlashSales(ctx context.Context) ([]*entities.FlashSale, error) {
	return u.flashSaleRepo.List(ctx)
}

// ListActiveFlashSales lists sales currently in their window
func (u *FlashSaleUsecase) ListActiveFlashSales(ctx context.Context) ([]*entities.FlashSale, error) {
	return u.flashSaleRepo.ListActive(ctx, time.Now())
}

// UpdateFlashSale applies a partial update to a sale
func (u *FlashSaleUsecase) UpdateFlashSale(ctx context.Context, id uuid.UUID, input *entities.UpdateFlashSaleInput) (*entities.FlashSale, error) {
	sale, err := u.flashSaleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		sale.Name = *input.Name
	}
	if input.StartsAt != nil {
		sale.StartsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		sale.EndsAt = *input.EndsAt
	}
	if !sale.EndsAt.After(sale.StartsAt) {
		return nil, domainerrors.BadRequest("sale must end after it starts")
	}
	if input.IsActive != nil {
		sale.IsActive = *input.IsActive
	}
	sale.UpdatedAt = time.Now()

	if err := u.flashSaleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// DeleteFlashSale removes a sale and its product entries
func (u *FlashSaleUsecase) DeleteFlashSale(ctx context.Context, id uuid.UUID) error {
	return u.flashSaleRepo.Delete(ctx, id)
}
