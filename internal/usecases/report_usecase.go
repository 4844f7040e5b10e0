package usecases

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
	"github.com/abeer2626/sami-shops/internal/domain/repositories"
)

const (
	reportRecentOrders = 5
	reportTopProducts  = 5
)

// ReportUsecase builds the vendor sales dashboard
type ReportUsecase struct {
	orderRepo repositories.OrderRepository
	storeRepo repositories.StoreRepository
}

// NewReportUsecase creates a new report usecase
func NewReportUsecase(orderRepo repositories.OrderRepository, storeRepo repositories.StoreRepository) *ReportUsecase {
	return &ReportUsecase{orderRepo: orderRepo, storeRepo: storeRepo}
}

// SalesReport aggregates the vendor's sales: revenue and units from
// non-cancelled order lines, the most recent orders, and the
// best-selling products by units
func (u *ReportUsecase) SalesReport(ctx context.Context, vendorID uuid.UUID) (*entities.SalesReport, error) {
	report := &entities.SalesReport{
		TotalRevenue: decimal.Zero,
		RecentOrders: []entities.RecentOrder{},
		TopProducts:  []entities.TopProduct{},
	}

	store, err := u.storeRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		// A vendor without a store has nothing sold yet.
		if errors.Is(err, domainerrors.ErrNotFound) {
			return report, nil
		}
		return nil, err
	}

	sales, err := u.orderRepo.ListSalesByStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	seenOrders := make(map[uuid.UUID]bool)
	type productAgg struct {
		name    string
		sold    int
		revenue decimal.Decimal
	}
	products := make(map[uuid.UUID]*productAgg)

	for _, sale := range sales {
		if sale.OrderStatus == entities.OrderStatusCancelled {
			continue
		}
		lineRevenue := sale.Item.Price.Mul(decimal.NewFromInt(int64(sale.Item.Quantity)))
		report.TotalRevenue = report.TotalRevenue.Add(lineRevenue)
		report.TotalProductsSold += sale.Item.Quantity

		if !seenOrders[sale.Item.OrderID] {
			seenOrders[sale.Item.OrderID] = true
			report.TotalOrders++
			if len(report.RecentOrders) < reportRecentOrders {
				report.RecentOrders = append(report.RecentOrders, entities.RecentOrder{
					OrderID: sale.Item.OrderID,
					Amount:  sale.OrderTotal,
					Status:  sale.OrderStatus,
					Date:    sale.OrderCreatedAt.Format("2006-01-02"),
				})
			}
		}

		agg := products[sale.Item.ProductID]
		if agg == nil {
			agg = &productAgg{name: sale.ProductName, revenue: decimal.Zero}
			products[sale.Item.ProductID] = agg
		}
		agg.sold += sale.Item.Quantity
		agg.revenue = agg.revenue.Add(lineRevenue)
	}

	for productID, agg := range products {
		report.TopProducts = append(report.TopProducts, entities.TopProduct{
			ProductID: productID,
			Name:      agg.name,
			Sold:      agg.sold,
			Revenue:   agg.revenue,
		})
	}
	sort.Slice(report.TopProducts, func(i, j int) bool {
		return report.TopProducts[i].Sold > report.TopProducts[j].Sold
	})
	if len(report.TopProducts) > reportTopProducts {
		report.TopProducts = report.TopProducts[:reportTopProducts]
	}

	return report, nil
}
