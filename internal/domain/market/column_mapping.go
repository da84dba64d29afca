package market

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/shared"
)

// FileKind identifies which report layout an uploaded file follows
type FileKind string

const (
	// FileKindSales is a sales / settlement report
	FileKindSales FileKind = "SALES"
	// FileKindStock is a stock inventory report
	FileKindStock FileKind = "STOCK"
)

// IsValid returns true if the file kind is known
func (k FileKind) IsValid() bool {
	return k == FileKindSales || k == FileKindStock
}

// String returns the string representation of FileKind
func (k FileKind) String() string {
	return string(k)
}

// ColumnMapping translates one external spreadsheet header to a canonical
// field name for a (marketplace, file kind) context. Each canonical field
// receives at most one external column per context.
type ColumnMapping struct {
	shared.BaseEntity
	MarketplaceID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mapping_context_field,priority:1"`
	FileKind       FileKind  `gorm:"type:varchar(10);not null;uniqueIndex:idx_mapping_context_field,priority:2"`
	ExternalColumn string    `gorm:"type:varchar(255);not null"`
	CanonicalField string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_mapping_context_field,priority:3"`
}

// TableName returns the table name for GORM
func (ColumnMapping) TableName() string {
	return "column_mappings"
}

// NewColumnMapping creates a new column mapping. The external column name is
// stored in its normalized lower-trimmed form so header matching is case-
// and whitespace-insensitive.
func NewColumnMapping(marketplaceID uuid.UUID, kind FileKind, externalColumn, canonicalField string) (*ColumnMapping, error) {
	if marketplaceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MARKETPLACE", "Marketplace ID cannot be empty")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_FILE_KIND", "File kind must be SALES or STOCK")
	}

	externalColumn = NormalizeHeader(externalColumn)
	if externalColumn == "" {
		return nil, shared.NewDomainError("INVALID_COLUMN", "External column name cannot be empty")
	}

	canonicalField = strings.TrimSpace(canonicalField)
	if canonicalField == "" {
		return nil, shared.NewDomainError("INVALID_FIELD", "Canonical field name cannot be empty")
	}

	return &ColumnMapping{
		BaseEntity:     shared.NewBaseEntity(),
		MarketplaceID:  marketplaceID,
		FileKind:       kind,
		ExternalColumn: externalColumn,
		CanonicalField: canonicalField,
	}, nil
}

// NormalizeHeader lower-cases and trims an external header name so lookups
// tolerate the casing and padding differences between marketplace exports
func NormalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}
