package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesReport summarizes a store's sales for the vendor dashboard
type SalesReport struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalOrders       int             `json:"totalOrders"`
	TotalProductsSold int             `json:"totalProductsSold"`
	RecentOrders      []RecentOrder   `json:"recentOrders"`
	TopProducts       []TopProduct    `json:"topProducts"`
}

// RecentOrder is one row of the recent-orders report section
type RecentOrder struct {
	OrderID uuid.UUID       `json:"id"`
	Amount  decimal.Decimal `json:"amount"`
	Status  OrderStatus     `json:"status"`
	Date    string          `json:"date"`
}

// TopProduct is one row of the top-products report section
type TopProduct struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Sold      int             `json:"sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// StoreSale is one of a store's order lines joined with its order and
// product, as read for report aggregation
type StoreSale struct {
	Item           OrderItem
	ProductName    string
	OrderStatus    OrderStatus
	OrderTotal     decimal.Decimal
	OrderCreatedAt time.Time
}
