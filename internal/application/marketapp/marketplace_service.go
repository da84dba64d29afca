// Package marketapp holds the application services for marketplaces and
// their column mapping dictionaries.
package marketapp

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/market"
	"github.com/sellerledger/backend/internal/domain/shared"
)

// MarketplaceService handles marketplace lookups and lifecycle
type MarketplaceService struct {
	marketplaceRepo market.MarketplaceRepository
}

// NewMarketplaceService creates a new MarketplaceService
func NewMarketplaceService(marketplaceRepo market.MarketplaceRepository) *MarketplaceService {
	return &MarketplaceService{marketplaceRepo: marketplaceRepo}
}

// ListActive returns the marketplaces available for new uploads
func (s *MarketplaceService) ListActive(ctx context.Context) ([]market.Marketplace, error) {
	return s.marketplaceRepo.FindActive(ctx)
}

// List returns all marketplaces matching the filter
func (s *MarketplaceService) List(ctx context.Context, filter shared.Filter) ([]market.Marketplace, error) {
	return s.marketplaceRepo.FindAll(ctx, filter)
}

// GetByID retrieves a marketplace by ID
func (s *MarketplaceService) GetByID(ctx context.Context, id uuid.UUID) (*market.Marketplace, error) {
	marketplace, err := s.marketplaceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if marketplace == nil {
		return nil, shared.ErrNotFound
	}
	return marketplace, nil
}

// Create creates a new active marketplace
func (s *MarketplaceService) Create(ctx context.Context, name string) (*market.Marketplace, error) {
	marketplace, err := market.NewMarketplace(name)
	if err != nil {
		return nil, err
	}
	if err := s.marketplaceRepo.Save(ctx, marketplace); err != nil {
		return nil, err
	}
	return marketplace, nil
}

// Deactivate hides a marketplace from new uploads. Existing transactions
// and mappings keep their references.
func (s *MarketplaceService) Deactivate(ctx context.Context, id uuid.UUID) (*market.Marketplace, error) {
	marketplace, err := s.marketplaceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if marketplace == nil {
		return nil, shared.ErrNotFound
	}
	marketplace.Deactivate()
	if err := s.marketplaceRepo.Save(ctx, marketplace); err != nil {
		return nil, err
	}
	return marketplace, nil
}
