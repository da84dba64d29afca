package marketapp

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/market"
	"github.com/sellerledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]market.Marketplace), args.Error(1)
}

func (m *MockMarketplaceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]market.Marketplace, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]market.Marketplace), args.Error(1)
}

func (m *MockMarketplaceRepository) Save(ctx context.Context, marketplace *market.Marketplace) error {
	args := m.Called(ctx, marketplace)
	return args.Error(0)
}

type MockColumnMappingRepository struct {
	mock.Mock
}

func (m *MockColumnMappingRepository) FindByID(ctx context.Context, id uuid.UUID) (*market.ColumnMapping, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*market.ColumnMapping), args.Error(1)
}

func (m *MockColumnMappingRepository) FindByContext(ctx context.Context, marketplaceID uuid.UUID, kind market.FileKind) ([]market.ColumnMapping, error) {
	args := m.Called(ctx, marketplaceID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]market.ColumnMapping), args.Error(1)
}

func (m *MockColumnMappingRepository) FindByMarketplace(ctx context.Context, marketplaceID uuid.UUID) ([]market.ColumnMapping, error) {
	args := m.Called(ctx, marketplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]market.ColumnMapping), args.Error(1)
}

func (m *MockColumnMappingRepository) Save(ctx context.Context, mapping *market.ColumnMapping) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

func (m *MockColumnMappingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
