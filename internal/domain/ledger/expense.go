package ledger

import (
	"time"

	"github.com/sellerledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies a standalone operating cost
type ExpenseCategory string

const (
	ExpenseCategoryRent        ExpenseCategory = "RENT"
	ExpenseCategorySalary      ExpenseCategory = "SALARY"
	ExpenseCategoryElectricity ExpenseCategory = "ELECTRICITY"
	ExpenseCategoryWater       ExpenseCategory = "WATER"
	ExpenseCategoryInternet    ExpenseCategory = "INTERNET"
	ExpenseCategoryLoan        ExpenseCategory = "LOAN"
	ExpenseCategoryPremium     ExpenseCategory = "PREMIUM"
	ExpenseCategoryTax         ExpenseCategory = "TAX"
	ExpenseCategoryMarketing   ExpenseCategory = "MARKETING"
	ExpenseCategoryOther       ExpenseCategory = "OTHER"
)

// IsValid returns true if the category is known
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryRent, ExpenseCategorySalary, ExpenseCategoryElectricity,
		ExpenseCategoryWater, ExpenseCategoryInternet, ExpenseCategoryLoan,
		ExpenseCategoryPremium, ExpenseCategoryTax, ExpenseCategoryMarketing,
		ExpenseCategoryOther:
		return true
	}
	return false
}

// Expense is a standalone operating-cost record. It has no relationship to
// products or transactions; it only feeds the net-profit aggregation.
type Expense struct {
	shared.BaseEntity
	Category    ExpenseCategory `gorm:"type:varchar(20);not null"`
	Description string          `gorm:"type:varchar(255)"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ExpenseDate time.Time       `gorm:"type:date;not null;index"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates a new expense record
func NewExpense(category ExpenseCategory, description string, amount decimal.Decimal, expenseDate time.Time) (*Expense, error) {
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown expense category")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount cannot be negative")
	}
	if expenseDate.IsZero() {
		expenseDate = time.Now()
	}

	return &Expense{
		BaseEntity:  shared.NewBaseEntity(),
		Category:    category,
		Description: description,
		Amount:      amount,
		ExpenseDate: expenseDate,
	}, nil
}
