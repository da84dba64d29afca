package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TransactionRepository defines persistence operations for the ledger.
// Rows are append-only: there is no update operation, and deletion is a
// corrective administrative action that never reverses stock or cost.
type TransactionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) ([]Transaction, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Transaction, error)
	FindByType(ctx context.Context, txType TransactionType) ([]Transaction, error)
	FindByDateRange(ctx context.Context, txType TransactionType, start, end time.Time) ([]Transaction, error)
	FindRecent(ctx context.Context, limit int) ([]Transaction, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, tx *Transaction) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// ExpenseRepository defines persistence operations for expenses
type ExpenseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Expense, error)
	Save(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	SumAmount(ctx context.Context) (decimal.Decimal, error)
}
