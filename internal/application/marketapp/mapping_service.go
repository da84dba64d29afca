package marketapp

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/market"
	"github.com/sellerledger/backend/internal/domain/shared"
)

// CreateMappingRequest binds one external spreadsheet header to a canonical
// field for a (marketplace, file kind) context.
type CreateMappingRequest struct {
	MarketplaceID  uuid.UUID
	FileKind       market.FileKind
	ExternalColumn string
	CanonicalField string
}

// MappingService manages the per-marketplace column mapping dictionaries
// that drive spreadsheet ingestion.
type MappingService struct {
	marketplaceRepo market.MarketplaceRepository
	mappingRepo     market.ColumnMappingRepository
}

// NewMappingService creates a new MappingService
func NewMappingService(marketplaceRepo market.MarketplaceRepository, mappingRepo market.ColumnMappingRepository) *MappingService {
	return &MappingService{
		marketplaceRepo: marketplaceRepo,
		mappingRepo:     mappingRepo,
	}
}

// Create binds an external column to a canonical field. A second binding
// for the same canonical field in the same context is rejected.
func (s *MappingService) Create(ctx context.Context, req CreateMappingRequest) (*market.ColumnMapping, error) {
	marketplace, err := s.marketplaceRepo.FindByID(ctx, req.MarketplaceID)
	if err != nil {
		return nil, err
	}
	if marketplace == nil {
		return nil, shared.ErrNotFound
	}

	mapping, err := market.NewColumnMapping(req.MarketplaceID, req.FileKind, req.ExternalColumn, req.CanonicalField)
	if err != nil {
		return nil, err
	}
	if err := s.mappingRepo.Save(ctx, mapping); err != nil {
		return nil, err
	}
	return mapping, nil
}

// ListByMarketplace returns all mappings configured for a marketplace,
// both file kinds included.
func (s *MappingService) ListByMarketplace(ctx context.Context, marketplaceID uuid.UUID) ([]market.ColumnMapping, error) {
	return s.mappingRepo.FindByMarketplace(ctx, marketplaceID)
}

// ListByContext returns the mappings for one (marketplace, file kind) pair
func (s *MappingService) ListByContext(ctx context.Context, marketplaceID uuid.UUID, kind market.FileKind) ([]market.ColumnMapping, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_FILE_KIND", "File kind must be SALES or STOCK")
	}
	return s.mappingRepo.FindByContext(ctx, marketplaceID, kind)
}

// Update rebinds an existing mapping to a new external column
func (s *MappingService) Update(ctx context.Context, id uuid.UUID, externalColumn string) (*market.ColumnMapping, error) {
	mapping, err := s.mappingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, shared.ErrNotFound
	}

	normalized := market.NormalizeHeader(externalColumn)
	if normalized == "" {
		return nil, shared.NewDomainError("INVALID_COLUMN", "External column name cannot be empty")
	}
	mapping.ExternalColumn = normalized

	if err := s.mappingRepo.Save(ctx, mapping); err != nil {
		return nil, err
	}
	return mapping, nil
}

// Delete removes a mapping
func (s *MappingService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.mappingRepo.Delete(ctx, id)
}
