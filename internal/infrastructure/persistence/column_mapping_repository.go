package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/market"
	"github.com/sellerledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormColumnMappingRepository implements market.ColumnMappingRepository using GORM
type GormColumnMappingRepository struct {
	db *gorm.DB
}

// NewGormColumnMappingRepository creates a new GormColumnMappingRepository
func NewGormColumnMappingRepository(db *gorm.DB) *GormColumnMappingRepository {
	return &GormColumnMappingRepository{db: db}
}

// FindByID finds a column mapping by its ID
func (r *GormColumnMappingRepository) FindByID(ctx context.Context, id uuid.UUID) (*market.ColumnMapping, error) {
	var mapping market.ColumnMapping
	if err := r.db.WithContext(ctx).First(&mapping, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mapping, nil
}

// FindByContext returns the mappings of one (marketplace, file kind) pair
func (r *GormColumnMappingRepository) FindByContext(ctx context.Context, marketplaceID uuid.UUID, kind market.FileKind) ([]market.ColumnMapping, error) {
	var mappings []market.ColumnMapping
	if err := r.db.WithContext(ctx).
		Where("marketplace_id = ? AND file_kind = ?", marketplaceID, kind).
		Order("canonical_field asc").
		Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

// FindByMarketplace returns all mappings configured for a marketplace
func (r *GormColumnMappingRepository) FindByMarketplace(ctx context.Context, marketplaceID uuid.UUID) ([]market.ColumnMapping, error) {
	var mappings []market.ColumnMapping
	if err := r.db.WithContext(ctx).
		Where("marketplace_id = ?", marketplaceID).
		Order("file_kind asc, canonical_field asc").
		Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

// Save creates or updates a column mapping
func (r *GormColumnMappingRepository) Save(ctx context.Context, mapping *market.ColumnMapping) error {
	err := r.db.WithContext(ctx).Save(mapping).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists
	}
	return err
}

// Delete deletes a column mapping by ID
func (r *GormColumnMappingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&market.ColumnMapping{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
