package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTransactionRepository_Create(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()

	productID := uuid.New()
	tx, err := ledger.NewTransaction(
		uuid.New(), &productID, ledger.TransactionTypeSale, "ORD-1",
		2, decimal.NewFromInt(100), decimal.Zero, decimal.Zero, decimal.NewFromInt(40), time.Now(),
	)
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "transactions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewGormTransactionRepository(db).Create(context.Background(), tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTransactionRepository_DeleteByIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("reports how many rows were deleted", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
		mock.ExpectExec(`DELETE FROM "transactions" WHERE id IN \(\$1,\$2,\$3\)`).
			WithArgs(ids[0], ids[1], ids[2]).
			WillReturnResult(sqlmock.NewResult(0, 2))

		deleted, err := NewGormTransactionRepository(db).DeleteByIDs(ctx, ids)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
	})

	t.Run("empty id list touches nothing", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		deleted, err := NewGormTransactionRepository(db).DeleteByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTransactionRepository_FindByType(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"id", "transaction_type", "order_number", "quantity"}).
		AddRow(uuid.New(), "SALE", "ORD-1", 1).
		AddRow(uuid.New(), "SALE", "ORD-2", 3)

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE transaction_type = \$1`).
		WithArgs("SALE").
		WillReturnRows(rows)

	txs, err := NewGormTransactionRepository(db).FindByType(context.Background(), ledger.TransactionTypeSale)
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}

func TestGormExpenseRepository_SumAmount(t *testing.T) {
	ctx := context.Background()

	t.Run("sums recorded expenses", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT SUM\(amount\) FROM "expenses"`).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("1250.75"))

		total, err := NewGormExpenseRepository(db).SumAmount(ctx)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.RequireFromString("1250.75")))
	})

	t.Run("empty table sums to zero", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT SUM\(amount\) FROM "expenses"`).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(nil))

		total, err := NewGormExpenseRepository(db).SumAmount(ctx)
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})
}
