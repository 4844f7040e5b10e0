package usecases

import (
	"context"
	"errors"
	"fmt"
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

// OrderUsecase handles the order lifecycle: creation with stock
// decrement, status transitions with audit trail, and the earnings
// fan-out on payment
type OrderUsecase struct {
	orderRepo      repositories.OrderRepository
	productRepo    repositories.ProductRepository
	storeRepo      repositories.StoreRepository
	flashSaleRepo  repositories.FlashSaleRepository
	earningRepo    repositories.EarningRepository
	commissionRepo repositories.CommissionRepository
	uow            repositories.UnitOfWork
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	storeRepo repositories.StoreRepository,
	flashSaleRepo repositories.FlashSaleRepository,
	earningRepo repositories.EarningRepository,
	commissionRepo repositories.CommissionRepository,
	uow repositories.UnitOfWork,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		storeRepo:      storeRepo,
		flashSaleRepo:  flashSaleRepo,
		earningRepo:    earningRepo,
		commissionRepo: commissionRepo,
		uow:            uow,
	}
}

// CreateOrder places an order. Validation, the order and item inserts,
// the stock decrements and the flash-sale counters all commit in one
// transaction, so a failure anywhere leaves no partial state behind.
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateOrderInput) (*entities.Order, error) {
	var order *entities.Order

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		now := time.Now()
		orderID := utils.GenerateUUIDv7()
		total := decimal.Zero
		items := make([]*entities.OrderItem, 0, len(input.Items))

		type saleHit struct {
			entryID  uuid.UUID
			quantity int
		}
		var saleHits []saleHit

		for _, line := range input.Items {
			product, err := u.productRepo.GetByID(txCtx, line.ProductID)
			if err != nil {
				if errors.Is(err, domainerrors.ErrNotFound) {
					return domainerrors.NotFound(fmt.Sprintf("product %s not found", line.ProductID))
				}
				return err
			}
			if product.Stock < line.Quantity {
				return domainerrors.NewAppError(400, fmt.Sprintf("insufficient stock for %s", product.Name), domainerrors.ErrInsufficientStock)
			}

			// Price snapshot: an active flash sale with remaining
			// quantity overrides the list price.
			price := product.Price
			entry, err := u.flashSaleRepo.ActiveEntryForProduct(txCtx, product.ID, now)
			if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
				return err
			}
			if entry != nil && !entry.Exhausted() {
				price = entry.SalePrice
				saleHits = append(saleHits, saleHit{entryID: entry.ID, quantity: line.Quantity})
			}

			total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			items = append(items, &entities.OrderItem{
				ID:        utils.GenerateUUIDv7(),
				OrderID:   orderID,
				ProductID: product.ID,
				StoreID:   product.StoreID,
				Quantity:  line.Quantity,
				Price:     price,
			})
		}

		order = &entities.Order{
			ID:            orderID,
			UserID:        userID,
			TotalAmount:   total,
			Status:        entities.OrderStatusPending,
			PaymentStatus: entities.PaymentStatusUnpaid,
			Items:         items,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := u.orderRepo.Create(txCtx, order); err != nil {
			return err
		}

		if err := u.orderRepo.AppendStatusHistory(txCtx, &entities.OrderStatusHistory{
			ID:        utils.GenerateUUIDv7(),
			OrderID:   orderID,
			Status:    entities.OrderStatusPending,
			ChangedBy: userID,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		for _, item := range items {
			if err := u.productRepo.DecrementStock(txCtx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, domainerrors.ErrInsufficientStock) {
					return domainerrors.NewAppError(400, "insufficient stock", err)
				}
				return err
			}
		}

		for _, hit := range saleHits {
			if err := u.flashSaleRepo.IncrementSold(txCtx, hit.entryID, hit.quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("total", order.TotalAmount.String()),
	)
	return order, nil
}

// GetOrder returns an order visible to the caller: its buyer, a vendor
// with items in it, or an admin
func (u *OrderUsecase) GetOrder(ctx context.Context, actorID uuid.UUID, actorRole entities.UserRole, orderID uuid.UUID) (*entities.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := u.authorizeOrderAccess(ctx, actorID, actorRole, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListUserOrders lists the caller's own orders
func (u *OrderUsecase) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error) {
	return u.orderRepo.ListByUser(ctx, userID)
}

// ListVendorOrders lists orders containing items from the vendor's
// store; empty when the vendor has no store yet
func (u *OrderUsecase) ListVendorOrders(ctx context.Context, vendorID uuid.UUID) ([]*entities.Order, error) {
	store, err := u.storeRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return []*entities.Order{}, nil
		}
		return nil, err
	}
	return u.orderRepo.ListByStore(ctx, store.ID)
}

// ListStatusHistory returns an order's status audit trail
func (u *OrderUsecase) ListStatusHistory(ctx context.Context, actorID uuid.UUID, actorRole entities.UserRole, orderID uuid.UUID) ([]*entities.OrderStatusHistory, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := u.authorizeOrderAccess(ctx, actorID, actorRole, order); err != nil {
		return nil, err
	}
	return u.orderRepo.ListStatusHistory(ctx, orderID)
}

// UpdateStatus applies one transition of the order lifecycle. Only the
// forward chain pending→paid→processing→shipped→delivered is allowed,
// plus cancellation from any non-terminal state. The transition, its
// audit row and the earnings side effects commit atomically:
// on paid, per-store vendor earnings are fanned out at the default
// commission rate; on delivered, the order's pending earnings become
// available.
func (u *OrderUsecase) UpdateStatus(ctx context.Context, actorID uuid.UUID, actorRole entities.UserRole, orderID uuid.UUID, input *entities.UpdateOrderStatusInput) (*entities.Order, error) {
	next := entities.OrderStatus(input.Status)
	if !next.Valid() {
		return nil, domainerrors.BadRequest("unknown order status")
	}

	// The read and the transition guard stay inside the transaction so
	// two concurrent updates cannot both observe the old status and
	// fan out earnings twice.
	var order *entities.Order
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		var err error
		order, err = u.orderRepo.GetByID(txCtx, orderID)
		if err != nil {
			return err
		}

		if actorRole != entities.UserRoleAdmin {
			if err := u.vendorInOrder(txCtx, actorID, order); err != nil {
				return err
			}
		}

		if !order.Status.CanTransitionTo(next) {
			return domainerrors.NewAppError(400,
				fmt.Sprintf("cannot transition order from %s to %s", order.Status, next),
				domainerrors.ErrInvalidTransition)
		}

		order.Status = next
		if next == entities.OrderStatusPaid {
			order.PaymentStatus = entities.PaymentStatusPaid
		}
		if input.TrackingNumber != "" {
			order.TrackingNumber = null.StringFrom(input.TrackingNumber)
		}
		if input.Carrier != "" {
			order.Carrier = null.StringFrom(input.Carrier)
		}

		if err := u.orderRepo.Update(txCtx, order); err != nil {
			return err
		}

		entry := &entities.OrderStatusHistory{
			ID:        utils.GenerateUUIDv7(),
			OrderID:   order.ID,
			Status:    next,
			ChangedBy: actorID,
			CreatedAt: time.Now(),
		}
		if input.Notes != "" {
			entry.Notes = null.StringFrom(input.Notes)
		}
		if err := u.orderRepo.AppendStatusHistory(txCtx, entry); err != nil {
			return err
		}

		switch next {
		case entities.OrderStatusPaid:
			return u.fanOutEarnings(txCtx, order)
		case entities.OrderStatusDelivered:
			return u.earningRepo.UpdateStatusByOrder(txCtx, order.ID, entities.EarningStatusPending, entities.EarningStatusAvailable)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "order status updated",
		zap.String("order_id", order.ID.String()),
		zap.String("status", string(next)),
		zap.String("changed_by", actorID.String()),
	)
	return order, nil
}

// fanOutEarnings creates one earning row per store represented in the
// order, using the commission rate flagged default at this moment.
// commissionAmount + vendorAmount always equals the store's subtotal.
func (u *OrderUsecase) fanOutEarnings(ctx context.Context, order *entities.Order) error {
	rate := decimal.Zero
	commission, err := u.commissionRepo.GetDefault(ctx)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
		// No default commission configured: the platform takes nothing.
	} else {
		rate = commission.Rate
	}

	subtotals := make(map[uuid.UUID]decimal.Decimal)
	var storeOrder []uuid.UUID
	for _, item := range order.Items {
		if _, seen := subtotals[item.StoreID]; !seen {
			storeOrder = append(storeOrder, item.StoreID)
		}
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotals[item.StoreID] = subtotals[item.StoreID].Add(lineTotal)
	}

	now := time.Now()
	earnings := make([]*entities.VendorEarning, 0, len(storeOrder))
	for _, storeID := range storeOrder {
		amount := subtotals[storeID]
		commissionAmount := amount.Mul(rate)
		earnings = append(earnings, &entities.VendorEarning{
			ID:               utils.GenerateUUIDv7(),
			OrderID:          order.ID,
			StoreID:          storeID,
			OrderAmount:      amount,
			CommissionRate:   rate,
			CommissionAmount: commissionAmount,
			VendorAmount:     amount.Sub(commissionAmount),
			Status:           entities.EarningStatusPending,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	return u.earningRepo.CreateBatch(ctx, earnings)
}

func (u *OrderUsecase) authorizeOrderAccess(ctx context.Context, actorID uuid.UUID, actorRole entities.UserRole, order *entities.Order) error {
	if order.UserID == actorID || actorRole == entities.UserRoleAdmin {
		return nil
	}
	return u.vendorInOrder(ctx, actorID, order)
}

// vendorInOrder checks that the actor is a vendor whose store has at
// least one item in the order
func (u *OrderUsecase) vendorInOrder(ctx context.Context, actorID uuid.UUID, order *entities.Order) error {
	store, err := u.storeRepo.GetByVendorID(ctx, actorID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.Forbidden("not allowed to access this order")
		}
		return err
	}
	for _, item := range order.Items {
		if item.StoreID == store.ID {
			return nil
		}
	}
	return domainerrors.Forbidden("not allowed to access this order")
}
