package ledgerapp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/catalog"
	"github.com/sellerledger/backend/internal/domain/ledger"
	"github.com/sellerledger/backend/internal/domain/market"
	"github.com/sellerledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SaveWithLock(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMarketplaceRepository is a mock implementation of market.MarketplaceRepository
type MockMarketplaceRepository struct {
	mock.Mock
}

func (m *MockMarketplaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*market.Marketplace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*market.Marketplace), args.Error(1)
}

func (m *MockMarketplaceRepository) FindActive(ctx context.Context) ([]market.Marketplace, error) {
	args := m.Called(ctx)
	return args.Get(0).([]market.Marketplace), args.Error(1)
}

func (m *MockMarketplaceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]market.Marketplace, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]market.Marketplace), args.Error(1)
}

func (m *MockMarketplaceRepository) Save(ctx context.Context, marketplace *market.Marketplace) error {
	args := m.Called(ctx, marketplace)
	return args.Error(0)
}

// MockTransactionRepository is a mock implementation of ledger.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByOrderNumber(ctx context.Context, orderNumber string) ([]ledger.Transaction, error) {
	args := m.Called(ctx, orderNumber)
	return args.Get(0).([]ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Transaction, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByType(ctx context.Context, txType ledger.TransactionType) ([]ledger.Transaction, error) {
	args := m.Called(ctx, txType)
	return args.Get(0).([]ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByDateRange(ctx context.Context, txType ledger.TransactionType, start, end time.Time) ([]ledger.Transaction, error) {
	args := m.Called(ctx, txType, start, end)
	return args.Get(0).([]ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindRecent(ctx context.Context, limit int) ([]ledger.Transaction, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *ledger.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}
