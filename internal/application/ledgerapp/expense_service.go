package ledgerapp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/ledger"
	"github.com/sellerledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest carries the fields of a new expense record
type CreateExpenseRequest struct {
	Category    ledger.ExpenseCategory
	Description string
	Amount      decimal.Decimal
	ExpenseDate time.Time
}

// ExpenseService manages standalone operating-cost records. Expenses are
// independent of products and the ledger; they only feed the net-profit
// aggregation.
type ExpenseService struct {
	expenseRepo ledger.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo ledger.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// Create records a new expense
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ledger.Expense, error) {
	expense, err := ledger.NewExpense(req.Category, req.Description, req.Amount, req.ExpenseDate)
	if err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetByID retrieves an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*ledger.Expense, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, shared.ErrNotFound
	}
	return expense, nil
}

// List returns expenses matching the filter
func (s *ExpenseService) List(ctx context.Context, filter shared.Filter) ([]ledger.Expense, error) {
	return s.expenseRepo.FindAll(ctx, filter)
}

// Delete removes an expense record
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.expenseRepo.Delete(ctx, id)
}
