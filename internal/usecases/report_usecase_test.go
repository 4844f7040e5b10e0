package usecases_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
	"github.com/abeer2626/sami-shops/internal/usecases"
)

func newReportUsecase() (*usecases.ReportUsecase, *MockOrderRepository, *MockStoreRepository) {
	orderRepo := new(MockOrderRepository)
	storeRepo := new(MockStoreRepository)
	uc := usecases.NewReportUsecase(orderRepo, storeRepo)
	return uc, orderRepo, storeRepo
}

func storeSale(orderID, productID uuid.UUID, name string, qty int, price string, status entities.OrderStatus, createdAt time.Time) *entities.StoreSale {
	unit := decimal.RequireFromString(price)
	return &entities.StoreSale{
		Item: entities.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  qty,
			Price:     unit,
		},
		ProductName:    name,
		OrderStatus:    status,
		OrderTotal:     unit.Mul(decimal.NewFromInt(int64(qty))),
		OrderCreatedAt: createdAt,
	}
}

func TestReportUsecase_SalesReport(t *testing.T) {
	uc, orderRepo, storeRepo := newReportUsecase()
	ctx := context.Background()

	vendorID := uuid.New()
	store := &entities.Store{ID: uuid.New(), VendorID: vendorID}
	storeRepo.On("GetByVendorID", ctx, vendorID).Return(store, nil).Once()

	orderA := uuid.New()
	orderB := uuid.New()
	cancelled := uuid.New()
	notebook := uuid.New()
	pen := uuid.New()
	day := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	orderRepo.On("ListSalesByStore", ctx, store.ID).Return([]*entities.StoreSale{
		storeSale(orderA, notebook, "Notebook", 2, "10.00", entities.OrderStatusDelivered, day),
		storeSale(orderA, pen, "Pen", 5, "2.00", entities.OrderStatusDelivered, day),
		storeSale(orderB, notebook, "Notebook", 1, "10.00", entities.OrderStatusPaid, day.Add(24*time.Hour)),
		storeSale(cancelled, pen, "Pen", 100, "2.00", entities.OrderStatusCancelled, day),
	}, nil).Once()

	report, err := uc.SalesReport(ctx, vendorID)
	assert.NoError(t, err)

	// 2x10 + 5x2 + 1x10, the cancelled line contributes nothing
	assert.True(t, report.TotalRevenue.Equal(decimal.RequireFromString("40.00")))
	assert.Equal(t, 2, report.TotalOrders)
	assert.Equal(t, 8, report.TotalProductsSold)

	assert.Len(t, report.RecentOrders, 2)
	assert.Equal(t, orderA, report.RecentOrders[0].OrderID)
	assert.Equal(t, "2026-08-20", report.RecentOrders[0].Date)

	assert.Len(t, report.TopProducts, 2)
	assert.Equal(t, pen, report.TopProducts[0].ProductID)
	assert.Equal(t, 5, report.TopProducts[0].Sold)
	assert.Equal(t, notebook, report.TopProducts[1].ProductID)
	assert.Equal(t, 3, report.TopProducts[1].Sold)
	assert.True(t, report.TopProducts[1].Revenue.Equal(decimal.RequireFromString("30.00")))
}

func TestReportUsecase_SalesReport_NoStore(t *testing.T) {
	uc, orderRepo, storeRepo := newReportUsecase()
	ctx := context.Background()

	vendorID := uuid.New()
	storeRepo.On("GetByVendorID", ctx, vendorID).Return(nil, domainerrors.ErrNotFound).Once()

	report, err := uc.SalesReport(ctx, vendorID)
	assert.NoError(t, err)
	assert.True(t, report.TotalRevenue.IsZero())
	assert.Zero(t, report.TotalOrders)
	assert.Empty(t, report.RecentOrders)
	assert.Empty(t, report.TopProducts)
	orderRepo.AssertNotCalled(t, "ListSalesByStore", ctx, vendorID)
}

func TestReportUsecase_SalesReport_Caps(t *testing.T) {
	uc, orderRepo, storeRepo := newReportUsecase()
	ctx := context.Background()

	vendorID := uuid.New()
	store := &entities.Store{ID: uuid.New(), VendorID: vendorID}
	storeRepo.On("GetByVendorID", ctx, vendorID).Return(store, nil).Once()

	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var sales []*entities.StoreSale
	for i := 0; i < 8; i++ {
		sales = append(sales, storeSale(uuid.New(), uuid.New(), fmt.Sprintf("Product %d", i), i+1, "1.00", entities.OrderStatusPaid, day.AddDate(0, 0, -i)))
	}
	orderRepo.On("ListSalesByStore", ctx, store.ID).Return(sales, nil).Once()

	report, err := uc.SalesReport(ctx, vendorID)
	assert.NoError(t, err)
	assert.Equal(t, 8, report.TotalOrders)
	assert.Len(t, report.RecentOrders, 5)
	assert.Len(t, report.TopProducts, 5)
	assert.Equal(t, 8, report.TopProducts[0].Sold)
}
