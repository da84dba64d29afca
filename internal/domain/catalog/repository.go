package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/shared"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, product *Product) error
	// SaveWithLock persists stock/cost mutations guarded by the version
	// column; a stale version returns shared.ErrConcurrencyConflict.
	SaveWithLock(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
