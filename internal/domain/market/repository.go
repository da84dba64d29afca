package market

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/shared"
)

// MarketplaceRepository defines persistence operations for marketplaces
type MarketplaceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Marketplace, error)
	FindActive(ctx context.Context) ([]Marketplace, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Marketplace, error)
	Save(ctx context.Context, marketplace *Marketplace) error
}

// ColumnMappingRepository defines persistence operations for column mappings
type ColumnMappingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ColumnMapping, error)
	FindByContext(ctx context.Context, marketplaceID uuid.UUID, kind FileKind) ([]ColumnMapping, error)
	FindByMarketplace(ctx context.Context, marketplaceID uuid.UUID) ([]ColumnMapping, error)
	Save(ctx context.Context, mapping *ColumnMapping) error
	Delete(ctx context.Context, id uuid.UUID) error
}
