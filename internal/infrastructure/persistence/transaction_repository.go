package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/ledger"
	"github.com/sellerledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var transactionSortColumns = map[string]bool{
	"created_at":       true,
	"transaction_date": true,
	"order_number":     true,
	"sale_price":       true,
}

// GormTransactionRepository implements ledger.TransactionRepository using
// GORM. The ledger is append-only: rows are created and read, never
// updated; deletion exists only as a corrective bulk operation.
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByID finds a transaction by its ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	var tx ledger.Transaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tx, nil
}

// FindByOrderNumber returns all rows recorded under an order number
func (r *GormTransactionRepository) FindByOrderNumber(ctx context.Context, orderNumber string) ([]ledger.Transaction, error) {
	var txs []ledger.Transaction
	if err := r.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		Order("transaction_date desc").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// FindAll returns transactions matching the filter
func (r *GormTransactionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Transaction, error) {
	var txs []ledger.Transaction
	query := r.db.WithContext(ctx).Model(&ledger.Transaction{})
	if txType, ok := filter.Filters["transaction_type"]; ok {
		query = query.Where("transaction_type = ?", txType)
	}
	if filter.Search != "" {
		query = query.Where("order_number ILIKE ?", "%"+filter.Search+"%")
	}
	query = applyFilter(query, filter, transactionSortColumns)

	if err := query.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// FindByType returns all transactions of one type
func (r *GormTransactionRepository) FindByType(ctx context.Context, txType ledger.TransactionType) ([]ledger.Transaction, error) {
	var txs []ledger.Transaction
	if err := r.db.WithContext(ctx).
		Where("transaction_type = ?", txType).
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// FindByDateRange returns transactions of one type within [start, end)
func (r *GormTransactionRepository) FindByDateRange(ctx context.Context, txType ledger.TransactionType, start, end time.Time) ([]ledger.Transaction, error) {
	var txs []ledger.Transaction
	if err := r.db.WithContext(ctx).
		Where("transaction_type = ? AND transaction_date >= ? AND transaction_date < ?", txType, start, end).
		Order("transaction_date asc").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// FindRecent returns the most recently dated transactions
func (r *GormTransactionRepository) FindRecent(ctx context.Context, limit int) ([]ledger.Transaction, error) {
	var txs []ledger.Transaction
	if err := r.db.WithContext(ctx).
		Order("transaction_date desc, created_at desc").
		Limit(limit).
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// Count returns the number of transactions matching the filter
func (r *GormTransactionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&ledger.Transaction{})
	if txType, ok := filter.Filters["transaction_type"]; ok {
		query = query.Where("transaction_type = ?", txType)
	}
	if filter.Search != "" {
		query = query.Where("order_number ILIKE ?", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts one ledger row
func (r *GormTransactionRepository) Create(ctx context.Context, tx *ledger.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// DeleteByIDs deletes rows by id and returns how many went away. Product
// stock and cost are deliberately left untouched.
func (r *GormTransactionRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Delete(&ledger.Transaction{}, "id IN ?", ids)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
