package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/market"
	"github.com/sellerledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var marketplaceSortColumns = map[string]bool{
	"created_at": true,
	"name":       true,
}

// GormMarketplaceRepository implements market.MarketplaceRepository using GORM
type GormMarketplaceRepository struct {
	db *gorm.DB
}

// NewGormMarketplaceRepository creates a new GormMarketplaceRepository
func NewGormMarketplaceRepository(db *gorm.DB) *GormMarketplaceRepository {
	return &GormMarketplaceRepository{db: db}
}

// FindByID finds a marketplace by its ID
func (r *GormMarketplaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*market.Marketplace, error) {
	var marketplace market.Marketplace
	if err := r.db.WithContext(ctx).First(&marketplace, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &marketplace, nil
}

// FindActive returns all active marketplaces ordered by name
func (r *GormMarketplaceRepository) FindActive(ctx context.Context) ([]market.Marketplace, error) {
	var marketplaces []market.Marketplace
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name asc").
		Find(&marketplaces).Error; err != nil {
		return nil, err
	}
	return marketplaces, nil
}

// FindAll returns marketplaces matching the filter
func (r *GormMarketplaceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]market.Marketplace, error) {
	var marketplaces []market.Marketplace
	query := applyFilter(r.db.WithContext(ctx).Model(&market.Marketplace{}), filter, marketplaceSortColumns)
	if err := query.Find(&marketplaces).Error; err != nil {
		return nil, err
	}
	return marketplaces, nil
}

// Save creates or updates a marketplace
func (r *GormMarketplaceRepository) Save(ctx context.Context, marketplace *market.Marketplace) error {
	return r.db.WithContext(ctx).Save(marketplace).Error
}
