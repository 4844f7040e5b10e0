package usecases_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	"github.com/abeer2626/sami-shops/pkg/logger"
	"github.com/abeer2626/sami-shops/pkg/utils"
)

func TestMain(m *testing.M) {
	logger.Init("production")
	os.Exit(m.Run())
}

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(context.Context) error) error {
	m.Called(ctx, fn)
	return fn(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string) ([]*entities.User, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// Mock StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Create(ctx context.Context, store *entities.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *MockStoreRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Store), args.Error(1)
}

func (m *MockStoreRepository) GetByVendorID(ctx context.Context, vendorID uuid.UUID) (*entities.Store, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Store), args.Error(1)
}

// Mock CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Mock ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entities.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entities.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error) {
	args := m.Called(ctx, filter, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *MockProductRepository) UpdateRatingStats(ctx context.Context, id uuid.UUID, average float64, count int) error {
	return m.Called(ctx, id, average, count).Error(0)
}

// Mock OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entities.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entities.Order, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *entities.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) AppendStatusHistory(ctx context.Context, entry *entities.OrderStatusHistory) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockOrderRepository) ListStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*entities.OrderStatusHistory, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.OrderStatusHistory), args.Error(1)
}

func (m *MockOrderRepository) UserHasPurchased(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ListSalesByStore(ctx context.Context, storeID uuid.UUID) ([]*entities.StoreSale, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.StoreSale), args.Error(1)
}

// Mock EarningRepository
type MockEarningRepository struct {
	mock.Mock
}

func (m *MockEarningRepository) CreateBatch(ctx context.Context, earnings []*entities.VendorEarning) error {
	return m.Called(ctx, earnings).Error(0)
}

func (m *MockEarningRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entities.VendorEarning, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VendorEarning), args.Error(1)
}

func (m *MockEarningRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entities.VendorEarning, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VendorEarning), args.Error(1)
}

func (m *MockEarningRepository) ListByStoreAndStatus(ctx context.Context, storeID uuid.UUID, status entities.EarningStatus) ([]*entities.VendorEarning, error) {
	args := m.Called(ctx, storeID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VendorEarning), args.Error(1)
}

func (m *MockEarningRepository) SumByStoreAndStatus(ctx context.Context, storeID uuid.UUID, status entities.EarningStatus) (decimal.Decimal, error) {
	args := m.Called(ctx, storeID, status)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockEarningRepository) MarkPaid(ctx context.Context, ids []uuid.UUID, payoutID uuid.UUID) error {
	return m.Called(ctx, ids, payoutID).Error(0)
}

func (m *MockEarningRepository) UpdateStatusByOrder(ctx context.Context, orderID uuid.UUID, from, to entities.EarningStatus) error {
	return m.Called(ctx, orderID, from, to).Error(0)
}

func (m *MockEarningRepository) RestoreByPayout(ctx context.Context, payoutID uuid.UUID) error {
	return m.Called(ctx, payoutID).Error(0)
}

// Mock PayoutRepository
type MockPayoutRepository struct {
	mock.Mock
}

func (m *MockPayoutRepository) Create(ctx context.Context, payout *entities.VendorPayout) error {
	return m.Called(ctx, payout).Error(0)
}

func (m *MockPayoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VendorPayout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VendorPayout), args.Error(1)
}

func (m *MockPayoutRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entities.VendorPayout, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VendorPayout), args.Error(1)
}

func (m *MockPayoutRepository) List(ctx context.Context) ([]*entities.VendorPayout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VendorPayout), args.Error(1)
}

func (m *MockPayoutRepository) Update(ctx context.Context, payout *entities.VendorPayout) error {
	return m.Called(ctx, payout).Error(0)
}

// Mock CommissionRepository
type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) Create(ctx context.Context, commission *entities.Commission) error {
	return m.Called(ctx, commission).Error(0)
}

func (m *MockCommissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Commission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Commission), args.Error(1)
}

func (m *MockCommissionRepository) GetDefault(ctx context.Context) (*entities.Commission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Commission), args.Error(1)
}

func (m *MockCommissionRepository) List(ctx context.Context) ([]*entities.Commission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Commission), args.Error(1)
}

func (m *MockCommissionRepository) Update(ctx context.Context, commission *entities.Commission) error {
	return m.Called(ctx, commission).Error(0)
}

func (m *MockCommissionRepository) ClearDefaults(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCommissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Mock ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entities.Review, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entities.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *entities.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Mock MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *entities.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MockMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Message), args.Error(1)
}

func (m *MockMessageRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Message, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Message), args.Error(1)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Mock FlashSaleRepository
type MockFlashSaleRepository struct {
	mock.Mock
}

func (m *MockFlashSaleRepository) Create(ctx context.Context, sale *entities.FlashSale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *MockFlashSaleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.FlashSale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FlashSale), args.Error(1)
}

func (m *MockFlashSaleRepository) List(ctx context.Context) ([]*entities.FlashSale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FlashSale), args.Error(1)
}

func (m *MockFlashSaleRepository) ListActive(ctx context.Context, now time.Time) ([]*entities.FlashSale, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FlashSale), args.Error(1)
}

func (m *MockFlashSaleRepository) Update(ctx context.Context, sale *entities.FlashSale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *MockFlashSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFlashSaleRepository) ActiveEntryForProduct(ctx context.Context, productID uuid.UUID, now time.Time) (*entities.FlashSaleProduct, error) {
	args := m.Called(ctx, productID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FlashSaleProduct), args.Error(1)
}

func (m *MockFlashSaleRepository) IncrementSold(ctx context.Context, entryID uuid.UUID, quantity int) error {
	return m.Called(ctx, entryID, quantity).Error(0)
}
