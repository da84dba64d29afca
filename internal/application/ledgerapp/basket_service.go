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

// shippingScale is the storage scale of money columns; per-line shipping
// shares are rounded to it and the last line absorbs the remainder.
const shippingScale = 4

// BasketLine is one product line of a multi-line sale
type BasketLine struct {
	ProductID        uuid.UUID
	Quantity         int64
	SalePrice        decimal.Decimal
	CommissionAmount decimal.Decimal
}

// BasketSaleInput is one customer order spanning several products. The
// shipping cost is shared by the whole order and split across the lines.
type BasketSaleInput struct {
	MarketplaceID uuid.UUID
	OrderNumber   string
	ShippingCost  decimal.Decimal
	SaleDate      time.Time
	Lines         []BasketLine
}

// BasketSaleResult reports the ledger rows created for a basket
type BasketSaleResult struct {
	TransactionIDs []uuid.UUID
}

// BasketLineError identifies which line of a basket failed. The whole
// basket is rolled back when any line fails.
type BasketLineError struct {
	Index int
	Err   error
}

func (e *BasketLineError) Error() string {
	return fmt.Sprintf("basket line %d: %v", e.Index, e.Err)
}

func (e *BasketLineError) Unwrap() error {
	return e.Err
}

// BasketSaleCoordinator records a multi-line sale as one atomic set of
// ledger entries sharing an order number and a split shipping cost.
type BasketSaleCoordinator struct {
	marketplaceRepo market.MarketplaceRepository
	ledgerService   *LedgerService
	scope           TransactionScope
}

// NewBasketSaleCoordinator creates a new BasketSaleCoordinator
func NewBasketSaleCoordinator(
	marketplaceRepo market.MarketplaceRepository,
	ledgerService *LedgerService,
	scope TransactionScope,
) *BasketSaleCoordinator {
	return &BasketSaleCoordinator{
		marketplaceRepo: marketplaceRepo,
		ledgerService:   ledgerService,
		scope:           scope,
	}
}

// RecordBasketSale appends one SALE row per line inside a single
// transaction. Any line failure aborts and rolls back every line, and the
// returned error names the offending line index.
func (c *BasketSaleCoordinator) RecordBasketSale(ctx context.Context, input BasketSaleInput) (*BasketSaleResult, error) {
	if len(input.Lines) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "basket has no lines")
	}
	if input.ShippingCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "shipping cost cannot be negative")
	}

	marketplace, err := c.marketplaceRepo.FindByID(ctx, input.MarketplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up marketplace: %w", err)
	}
	if marketplace == nil {
		return nil, shared.ErrNotFound
	}

	shares := splitShipping(input.ShippingCost, len(input.Lines))

	result := &BasketSaleResult{TransactionIDs: make([]uuid.UUID, 0, len(input.Lines))}
	err = c.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		for i, line := range input.Lines {
			productID := line.ProductID
			tx, err := c.ledgerService.AppendWithin(ctx, repos, AppendInput{
				MarketplaceID:    input.MarketplaceID,
				ProductID:        &productID,
				Type:             ledger.TransactionTypeSale,
				OrderNumber:      input.OrderNumber,
				Quantity:         line.Quantity,
				SalePrice:        line.SalePrice,
				CommissionAmount: line.CommissionAmount,
				ShippingCost:     shares[i],
				TransactionDate:  input.SaleDate,
			})
			if err != nil {
				return &BasketLineError{Index: i, Err: err}
			}
			result.TransactionIDs = append(result.TransactionIDs, tx.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// splitShipping divides total evenly over n lines at the storage scale.
// The last line absorbs the rounding remainder so the shares always sum
// back to the exact total.
func splitShipping(total decimal.Decimal, n int) []decimal.Decimal {
	shares := make([]decimal.Decimal, n)
	if n == 0 {
		return shares
	}

	share := total.Div(decimal.NewFromInt(int64(n))).Round(shippingScale)
	allocated := decimal.Zero
	for i := 0; i < n-1; i++ {
		shares[i] = share
		allocated = allocated.Add(share)
	}
	shares[n-1] = total.Sub(allocated)

	return shares
}
