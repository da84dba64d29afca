package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/application/ledgerapp"
	"github.com/sellerledger/backend/internal/domain/catalog"
	"github.com/sellerledger/backend/internal/domain/ledger"
	"github.com/sellerledger/backend/internal/domain/market"
	"github.com/sellerledger/backend/internal/domain/shared"
	"github.com/sellerledger/backend/internal/infrastructure/tabular"
)

// Error caps per file kind. The counts keep going past the cap; only the
// reported messages are truncated.
const (
	maxSalesErrors = 10
	maxStockErrors = 5
)

// Canonical fields a sales file must cover after mapping. Missing ones are
// a mapping setup fault, not a data fault, and abort the whole batch.
var requiredSalesFields = []string{FieldOrderNumber, FieldSalePrice, FieldSKU}

// BatchResult is the outcome of one ingested file. The JSON field names
// are fixed; existing report consumers read them.
type BatchResult struct {
	CreatedCount int      `json:"created_count"`
	UpdatedCount int      `json:"updated_count"`
	Errors       []string `json:"errors"`
}

// Pipeline ingests one uploaded report file as a single unit of work.
// Row-level data problems are recorded in the batch result and do not
// abort sibling rows; configuration and concurrency problems roll back
// the whole batch.
type Pipeline struct {
	marketplaceRepo market.MarketplaceRepository
	resolver        *MappingResolver
	ledgerService   *ledgerapp.LedgerService
	scope           ledgerapp.TransactionScope
}

// NewPipeline creates a new ingestion Pipeline
func NewPipeline(
	marketplaceRepo market.MarketplaceRepository,
	resolver *MappingResolver,
	ledgerService *ledgerapp.LedgerService,
	scope ledgerapp.TransactionScope,
) *Pipeline {
	return &Pipeline{
		marketplaceRepo: marketplaceRepo,
		resolver:        resolver,
		ledgerService:   ledgerService,
		scope:           scope,
	}
}

// Ingest processes one parsed document for a marketplace according to the
// file kind's semantics.
func (p *Pipeline) Ingest(ctx context.Context, marketplaceID uuid.UUID, kind market.FileKind, doc tabular.Document) (*BatchResult, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_FILE_KIND", fmt.Sprintf("unknown file kind: %s", kind))
	}

	marketplace, err := p.marketplaceRepo.FindByID(ctx, marketplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up marketplace: %w", err)
	}
	if marketplace == nil {
		return nil, shared.ErrNotFound
	}

	mapping, err := p.resolver.Resolve(ctx, marketplaceID, kind)
	if err != nil {
		return nil, err
	}

	if kind == market.FileKindSales {
		return p.ingestSales(ctx, marketplaceID, mapping, doc)
	}
	return p.ingestStock(ctx, mapping, doc)
}

func (p *Pipeline) ingestSales(ctx context.Context, marketplaceID uuid.UUID, mapping map[string]string, doc tabular.Document) (*BatchResult, error) {
	covered := mappedHeaders(doc, mapping)
	var missing []string
	for _, field := range requiredSalesFields {
		if !covered[field] {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, shared.NewConfigurationError(fmt.Sprintf(
			"columns not mapped or absent from the file: %s; configure the column mappings for this marketplace",
			strings.Join(missing, ", ")))
	}

	result := &BatchResult{Errors: make([]string, 0)}
	err := p.scope.Execute(ctx, func(repos ledgerapp.TransactionalRepositories) error {
		for _, raw := range doc.Rows {
			if err := p.ingestSalesRow(ctx, repos, marketplaceID, mapping, raw); err != nil {
				if errors.Is(err, shared.ErrConcurrencyConflict) {
					return err
				}
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", raw.LineNumber, err))
				continue
			}
			result.CreatedCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result.Errors) > maxSalesErrors {
		result.Errors = result.Errors[:maxSalesErrors]
	}
	return result, nil
}

func (p *Pipeline) ingestSalesRow(ctx context.Context, repos ledgerapp.TransactionalRepositories, marketplaceID uuid.UUID, mapping map[string]string, raw tabular.Row) error {
	row, err := NormalizeRow(raw, mapping)
	if err != nil {
		return err
	}

	var productID *uuid.UUID
	if sku := row.Get(FieldSKU); sku != "" {
		product, err := repos.ProductRepo().FindBySKU(ctx, sku)
		if err != nil {
			return fmt.Errorf("failed to look up product %q: %w", sku, err)
		}
		if product != nil {
			id := product.ID
			productID = &id
		}
	}

	_, err = p.ledgerService.AppendWithin(ctx, repos, ledgerapp.AppendInput{
		MarketplaceID:    marketplaceID,
		ProductID:        productID,
		Type:             ledger.TransactionTypeSale,
		OrderNumber:      row.Get(FieldOrderNumber),
		Quantity:         parseInt(row.Get(FieldQuantity), 1),
		SalePrice:        parseDecimal(row.Get(FieldSalePrice)),
		CommissionAmount: parseDecimal(row.Get(FieldCommission)),
		ShippingCost:     parseDecimal(row.Get(FieldShipping)),
		TransactionDate:  parseDate(row.Get(FieldTransactionDate)),
	})
	return err
}

func (p *Pipeline) ingestStock(ctx context.Context, mapping map[string]string, doc tabular.Document) (*BatchResult, error) {
	if !mappedHeaders(doc, mapping)[FieldSKU] {
		return nil, shared.NewConfigurationError(
			"columns not mapped or absent from the file: sku; configure the column mappings for this marketplace")
	}

	result := &BatchResult{Errors: make([]string, 0)}
	err := p.scope.Execute(ctx, func(repos ledgerapp.TransactionalRepositories) error {
		for _, raw := range doc.Rows {
			created, err := p.ingestStockRow(ctx, repos, mapping, raw)
			if err != nil {
				if errors.Is(err, errSkipRow) {
					continue
				}
				if errors.Is(err, shared.ErrConcurrencyConflict) {
					return err
				}
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", raw.LineNumber, err))
				continue
			}
			if created {
				result.CreatedCount++
			} else {
				result.UpdatedCount++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result.Errors) > maxStockErrors {
		result.Errors = result.Errors[:maxStockErrors]
	}
	return result, nil
}

// errSkipRow marks a stock row with no usable SKU: skipped silently,
// counted neither as success nor as error.
var errSkipRow = errors.New("skip row")

func (p *Pipeline) ingestStockRow(ctx context.Context, repos ledgerapp.TransactionalRepositories, mapping map[string]string, raw tabular.Row) (created bool, err error) {
	row, err := NormalizeRow(raw, mapping)
	if err != nil {
		return false, err
	}

	sku := row.Get(FieldSKU)
	if sku == "" {
		return false, errSkipRow
	}

	quantity := parseInt(row.Get(FieldStockQuantity), 0)
	price := parseDecimal(row.Get(FieldBuyingPrice))
	name := row.Get(FieldName)

	product, err := repos.ProductRepo().FindBySKU(ctx, sku)
	if err != nil {
		return false, fmt.Errorf("failed to look up product %q: %w", sku, err)
	}

	if product == nil {
		product, err = catalog.NewProduct(sku, name)
		if err != nil {
			return false, err
		}
		// First-ever price doubles as the initial weighted cost.
		product.StockQuantity = quantity
		product.BuyingPrice = price
		product.WeightedCost = price
		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return false, fmt.Errorf("failed to create product %q: %w", sku, err)
		}
		return true, nil
	}

	// Imported quantities add to the stock on hand; they are receipts,
	// not a snapshot overwrite.
	next := ledger.ApplyStockEvent(
		ledger.StockState{
			Quantity:     product.StockQuantity,
			WeightedCost: product.WeightedCost,
			BuyingPrice:  product.BuyingPrice,
		},
		ledger.StockEvent{
			Kind:      ledger.TransactionTypePurchase,
			Quantity:  quantity,
			UnitPrice: price,
		},
	)
	product.StockQuantity = next.State.Quantity
	product.WeightedCost = next.State.WeightedCost
	product.BuyingPrice = next.State.BuyingPrice
	if name != "" {
		product.Name = name
	}

	if err := repos.ProductRepo().SaveWithLock(ctx, product); err != nil {
		return false, err
	}
	return false, nil
}
