// Package ingest normalizes uploaded marketplace reports into ledger and
// product mutations. The pipeline is two explicit stages: resolve the
// column mapping for a (marketplace, file kind) context, then normalize
// each raw row against it before applying the file kind's semantics.
package ingest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/market"
)

// Canonical field names the normalized rows are keyed by
const (
	FieldSKU             = "sku"
	FieldOrderNumber     = "order_number"
	FieldSalePrice       = "sale_price"
	FieldQuantity        = "quantity"
	FieldCommission      = "commission_amount"
	FieldShipping        = "shipping_cost"
	FieldTransactionDate = "transaction_date"
	FieldStockQuantity   = "stock_quantity"
	FieldBuyingPrice     = "buying_price"
	FieldName            = "name"
)

// MappingResolver resolves the stored column mappings of one
// (marketplace, file kind) context into a lookup dictionary.
type MappingResolver struct {
	mappingRepo market.ColumnMappingRepository
}

// NewMappingResolver creates a new MappingResolver
func NewMappingResolver(mappingRepo market.ColumnMappingRepository) *MappingResolver {
	return &MappingResolver{mappingRepo: mappingRepo}
}

// Resolve returns the external→canonical dictionary for the context. Keys
// are normalized lower-trimmed external header names. An empty dictionary
// is not an error here; required-field enforcement is per file kind.
func (r *MappingResolver) Resolve(ctx context.Context, marketplaceID uuid.UUID, kind market.FileKind) (map[string]string, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown file kind: %s", kind)
	}

	mappings, err := r.mappingRepo.FindByContext(ctx, marketplaceID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load column mappings: %w", err)
	}

	dict := make(map[string]string, len(mappings))
	for _, m := range mappings {
		dict[market.NormalizeHeader(m.ExternalColumn)] = m.CanonicalField
	}

	return dict, nil
}
