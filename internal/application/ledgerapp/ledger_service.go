// Package ledgerapp holds the application services that write the
// transaction ledger: single appends, bulk corrective deletes and
// multi-line basket sales.
package ledgerapp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/ledger"
	"github.com/sellerledger/backend/internal/domain/market"
	"github.com/sellerledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AppendInput is one stock-affecting event to record on the ledger.
// UnitPrice is the purchase price for PURCHASE events and is ignored for
// cost purposes on the other kinds.
type AppendInput struct {
	MarketplaceID    uuid.UUID
	ProductID        *uuid.UUID
	Type             ledger.TransactionType
	OrderNumber      string
	Quantity         int64
	SalePrice        decimal.Decimal
	CommissionAmount decimal.Decimal
	ShippingCost     decimal.Decimal
	UnitPrice        decimal.Decimal
	TransactionDate  time.Time
}

// LedgerService appends rows to the transaction ledger. Every append that
// references a product runs the cost-basis computation and persists the new
// product state and the ledger row in the same transaction.
type LedgerService struct {
	marketplaceRepo market.MarketplaceRepository
	scope           TransactionScope
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(marketplaceRepo market.MarketplaceRepository, scope TransactionScope) *LedgerService {
	return &LedgerService{
		marketplaceRepo: marketplaceRepo,
		scope:           scope,
	}
}

// Append records one event on the ledger. When the input references a
// product, the product's stock and cost are updated through the cost-basis
// rules atomically with the insert; the returned row carries the frozen
// unit cost. Without a product reference the cost is frozen at zero.
func (s *LedgerService) Append(ctx context.Context, input AppendInput) (*ledger.Transaction, error) {
	if !input.Type.IsValid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", fmt.Sprintf("unknown transaction type: %s", input.Type))
	}
	if input.Quantity < 1 {
		return nil, shared.ErrInvalidQuantity
	}

	marketplace, err := s.marketplaceRepo.FindByID(ctx, input.MarketplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up marketplace: %w", err)
	}
	if marketplace == nil {
		return nil, shared.ErrNotFound
	}

	var created *ledger.Transaction
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		tx, err := s.AppendWithin(ctx, repos, input)
		if err != nil {
			return err
		}
		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// AppendWithin records one event using repositories that are already part
// of an enclosing transaction scope. Batch callers (ingestion, baskets) use
// this to group several appends into a single unit of work. The caller is
// responsible for having validated the marketplace reference.
func (s *LedgerService) AppendWithin(ctx context.Context, repos TransactionalRepositories, input AppendInput) (*ledger.Transaction, error) {
	if !input.Type.IsValid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", fmt.Sprintf("unknown transaction type: %s", input.Type))
	}
	if input.Quantity < 1 {
		return nil, shared.ErrInvalidQuantity
	}

	frozenCost := decimal.Zero

	if input.ProductID != nil {
		product, err := repos.ProductRepo().FindByID(ctx, *input.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up product: %w", err)
		}
		if product == nil {
			return nil, shared.ErrNotFound
		}

		result := ledger.ApplyStockEvent(
			ledger.StockState{
				Quantity:     product.StockQuantity,
				WeightedCost: product.WeightedCost,
				BuyingPrice:  product.BuyingPrice,
			},
			ledger.StockEvent{
				Kind:      input.Type,
				Quantity:  input.Quantity,
				UnitPrice: s.eventUnitPrice(input),
			},
		)

		product.StockQuantity = result.State.Quantity
		product.WeightedCost = result.State.WeightedCost
		product.BuyingPrice = result.State.BuyingPrice
		if err := repos.ProductRepo().SaveWithLock(ctx, product); err != nil {
			return nil, err
		}

		frozenCost = result.UnitCost
	}

	tx, err := ledger.NewTransaction(
		input.MarketplaceID,
		input.ProductID,
		input.Type,
		input.OrderNumber,
		input.Quantity,
		input.SalePrice,
		input.CommissionAmount,
		input.ShippingCost,
		frozenCost,
		input.TransactionDate,
	)
	if err != nil {
		return nil, err
	}

	if err := repos.TransactionRepo().Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return tx, nil
}

// eventUnitPrice picks the price the cost-basis rules see: the purchase
// price for inbound events, the sale price otherwise (where it only ends up
// on the row, never in the average).
func (s *LedgerService) eventUnitPrice(input AppendInput) decimal.Decimal {
	if input.Type == ledger.TransactionTypePurchase {
		return input.UnitPrice
	}
	return input.SalePrice
}

// BulkDelete removes ledger rows by id. It is a corrective administrative
// action: the stock and cost effects of the deleted rows are NOT reversed.
// Returns the number of rows actually deleted.
func (s *LedgerService) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, shared.NewDomainError("INVALID_INPUT", "no transaction ids provided")
	}

	var deleted int64
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		n, err := repos.TransactionRepo().DeleteByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to delete transactions: %w", err)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}
