package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/ledger"
	"github.com/sellerledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var expenseSortColumns = map[string]bool{
	"created_at":   true,
	"expense_date": true,
	"amount":       true,
	"category":     true,
}

// GormExpenseRepository implements ledger.ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Expense, error) {
	var expense ledger.Expense
	if err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

// FindAll returns expenses matching the filter
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Expense, error) {
	var expenses []ledger.Expense
	query := r.db.WithContext(ctx).Model(&ledger.Expense{})
	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}
	query = applyFilter(query, filter, expenseSortColumns)

	if err := query.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// Save creates or updates an expense
func (r *GormExpenseRepository) Save(ctx context.Context, expense *ledger.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

// Delete deletes an expense by ID
func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ledger.Expense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SumAmount returns the all-time total of recorded expenses
func (r *GormExpenseRepository) SumAmount(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&ledger.Expense{}).
		Select("SUM(amount)").
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
