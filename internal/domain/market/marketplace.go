package market

import (
	"strings"
	"time"

	"github.com/sellerledger/backend/internal/domain/shared"
)

// Marketplace represents a sales channel (Trendyol, Hepsiburada, Amazon, ...).
// Marketplaces are referenced by transactions and column mappings and are
// never deleted once referenced.
type Marketplace struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Marketplace) TableName() string {
	return "marketplaces"
}

// NewMarketplace creates a new active marketplace
func NewMarketplace(name string) (*Marketplace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Marketplace name cannot be empty")
	}
	if len(name) > 50 {
		return nil, shared.NewDomainError("INVALID_NAME", "Marketplace name cannot exceed 50 characters")
	}

	return &Marketplace{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		IsActive:   true,
	}, nil
}

// Deactivate hides the marketplace from new uploads without breaking
// references held by existing transactions
func (m *Marketplace) Deactivate() {
	m.IsActive = false
	m.UpdatedAt = time.Now()
}
