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

// OrderRepository implements order data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order together with its items
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	m := &models.Order{
		ID:            order.ID,
		UserID:        order.UserID,
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
	if err := db.Create(m).Error; err != nil {
		return err
	}

	for _, item := range order.Items {
		im := &models.OrderItem{
			ID:        item.ID,
			OrderID:   order.ID,
			ProductID: item.ProductID,
			StoreID:   item.StoreID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if err := db.Create(im).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID gets an order with its items
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var m models.Order
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	order := orderToEntity(&m)
	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// ListByUser lists a user's orders with items, newest first
func (r *OrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error) {
	var orderModels []models.Order
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return r.attachItems(ctx, orderModels)
}

// ListByStore lists orders containing at least one item from the store
func (r *OrderRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entities.Order, error) {
	var orderModels []models.Order
	db := GetDB(ctx, r.db).WithContext(ctx)
	err := db.
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("order_items.store_id = ?", storeID).
		Group("orders.id").
		Order("MAX(orders.created_at) DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, orderModels)
}

// Update updates an order's status, payment and tracking fields
func (r *OrderRepository) Update(ctx context.Context, order *entities.Order) error {
	updates := map[string]interface{}{
		"status":         string(order.Status),
		"payment_status": string(order.PaymentStatus),
		"updated_at":     time.Now(),
	}
	if order.TrackingNumber.Valid {
		updates["tracking_number"] = order.TrackingNumber.String
	}
	if order.Carrier.Valid {
		updates["carrier"] = order.Carrier.String
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AppendStatusHistory appends a status audit row
func (r *OrderRepository) AppendStatusHistory(ctx context.Context, entry *entities.OrderStatusHistory) error {
	m := &models.OrderStatusHistory{
		ID:        entry.ID,
		OrderID:   entry.OrderID,
		Status:    string(entry.Status),
		ChangedBy: entry.ChangedBy,
		Notes:     entry.Notes.Ptr(),
		CreatedAt: entry.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListStatusHistory lists an order's status audit rows oldest first
func (r *OrderRepository) ListStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*entities.OrderStatusHistory, error) {
	var historyModels []models.OrderStatusHistory
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("order_id = ?", orderID).Order("created_at ASC").Find(&historyModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*entities.OrderStatusHistory, 0, len(historyModels))
	for i := range historyModels {
		m := &historyModels[i]
		entries = append(entries, &entities.OrderStatusHistory{
			ID:        m.ID,
			OrderID:   m.OrderID,
			Status:    entities.OrderStatus(m.Status),
			ChangedBy: m.ChangedBy,
			Notes:     null.StringFromPtr(m.Notes),
			CreatedAt: m.CreatedAt,
		})
	}
	return entries, nil
}

// UserHasPurchased reports whether any of the user's orders contains the product
func (r *OrderRepository) UserHasPurchased(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND order_items.product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListSalesByStore returns the store's order lines joined with their
// order and product, newest order first
func (r *OrderRepository) ListSalesByStore(ctx context.Context, storeID uuid.UUID) ([]*entities.StoreSale, error) {
	type saleRow struct {
		models.OrderItem
		ProductName    string
		OrderStatus    string
		OrderTotal     decimal.Decimal
		OrderCreatedAt time.Time
	}

	var rows []saleRow
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("order_items.*, products.name AS product_name, orders.status AS order_status, orders.total_amount AS order_total, orders.created_at AS order_created_at").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.store_id = ?", storeID).
		Order("orders.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sales := make([]*entities.StoreSale, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		sales = append(sales, &entities.StoreSale{
			Item: entities.OrderItem{
				ID:        row.ID,
				OrderID:   row.OrderID,
				ProductID: row.ProductID,
				StoreID:   row.StoreID,
				Quantity:  row.Quantity,
				Price:     row.Price,
			},
			ProductName:    row.ProductName,
			OrderStatus:    entities.OrderStatus(row.OrderStatus),
			OrderTotal:     row.OrderTotal,
			OrderCreatedAt: row.OrderCreatedAt,
		})
	}
	return sales, nil
}

func (r *OrderRepository) attachItems(ctx context.Context, orderModels []models.Order) ([]*entities.Order, error) {
	orders := make([]*entities.Order, 0, len(orderModels))
	for i := range orderModels {
		order := orderToEntity(&orderModels[i])
		items, err := r.listItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *OrderRepository) listItems(ctx context.Context, orderID uuid.UUID) ([]*entities.OrderItem, error) {
	var itemModels []models.OrderItem
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("order_id = ?", orderID).Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.OrderItem, 0, len(itemModels))
	for i := range itemModels {
		m := &itemModels[i]
		items = append(items, &entities.OrderItem{
			ID:        m.ID,
			OrderID:   m.OrderID,
			ProductID: m.ProductID,
			StoreID:   m.StoreID,
			Quantity:  m.Quantity,
			Price:     m.Price,
		})
	}
	return items, nil
}

func orderToEntity(m *models.Order) *entities.Order {
	return &entities.Order{
		ID:             m.ID,
		UserID:         m.UserID,
		TotalAmount:    m.TotalAmount,
		Status:         entities.OrderStatus(m.Status),
		PaymentStatus:  entities.PaymentStatus(m.PaymentStatus),
		TrackingNumber: null.StringFromPtr(m.TrackingNumber),
		Carrier:        null.StringFromPtr(m.Carrier),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
