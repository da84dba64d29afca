package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	marketplaceID := uuid.New()
	productID := uuid.New()
	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates a sale row with frozen cost", func(t *testing.T) {
		tx, err := NewTransaction(
			marketplaceID, &productID, TransactionTypeSale, "ORD-1001",
			2, dec(300), dec(30), dec(20), dec(150), date,
		)
		require.NoError(t, err)

		assert.Equal(t, "ORD-1001", tx.OrderNumber)
		assert.Equal(t, int64(2), tx.Quantity)
		assert.True(t, tx.CostAtTransaction.Equal(dec(150)))
		assert.Equal(t, date, tx.TransactionDate)
	})

	t.Run("allows absent product reference", func(t *testing.T) {
		tx, err := NewTransaction(
			marketplaceID, nil, TransactionTypeSale, "ORD-1002",
			1, dec(50), decimal.Zero, decimal.Zero, decimal.Zero, date,
		)
		require.NoError(t, err)
		assert.Nil(t, tx.ProductID)
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		_, err := NewTransaction(
			marketplaceID, &productID, TransactionTypeSale, "ORD-1003",
			0, dec(50), decimal.Zero, decimal.Zero, decimal.Zero, date,
		)
		assert.ErrorIs(t, err, shared.ErrInvalidQuantity)
	})

	t.Run("rejects unknown transaction type", func(t *testing.T) {
		_, err := NewTransaction(
			marketplaceID, &productID, TransactionType("REFUND"), "ORD-1004",
			1, dec(50), decimal.Zero, decimal.Zero, decimal.Zero, date,
		)
		assert.Error(t, err)
	})

	t.Run("rejects empty marketplace", func(t *testing.T) {
		_, err := NewTransaction(
			uuid.Nil, &productID, TransactionTypeSale, "ORD-1005",
			1, dec(50), decimal.Zero, decimal.Zero, decimal.Zero, date,
		)
		assert.Error(t, err)
	})

	t.Run("defaults zero date to now", func(t *testing.T) {
		tx, err := NewTransaction(
			marketplaceID, &productID, TransactionTypeSale, "ORD-1006",
			1, dec(50), decimal.Zero, decimal.Zero, decimal.Zero, time.Time{},
		)
		require.NoError(t, err)
		assert.False(t, tx.TransactionDate.IsZero())
	})
}

func TestTransaction_Profit(t *testing.T) {
	marketplaceID := uuid.New()
	productID := uuid.New()

	tx, err := NewTransaction(
		marketplaceID, &productID, TransactionTypeSale, "ORD-2001",
		2, dec(500), dec(50), dec(25), dec(100), time.Now(),
	)
	require.NoError(t, err)

	// cost side: 2*100 + 50 + 25 = 275
	assert.True(t, tx.TotalCost().Equal(dec(275)))
	assert.True(t, tx.NetProfit().Equal(dec(225)))
}

func TestNewExpense(t *testing.T) {
	t.Run("creates valid expense", func(t *testing.T) {
		expense, err := NewExpense(ExpenseCategoryRent, "June office rent", dec(1200), time.Now())
		require.NoError(t, err)
		assert.Equal(t, ExpenseCategoryRent, expense.Category)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := NewExpense(ExpenseCategory("BRIBES"), "", dec(10), time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := NewExpense(ExpenseCategoryOther, "", dec(-5), time.Now())
		assert.Error(t, err)
	})
}
