package persistence

import (
	"context"

	"github.com/sellerledger/backend/internal/application/ledgerapp"
	"github.com/sellerledger/backend/internal/domain/catalog"
	"github.com/sellerledger/backend/internal/domain/ledger"
	"gorm.io/gorm"
)

// GormTransactionScope implements ledgerapp.TransactionScope over GORM
// transactions. Every ledger append, basket sale or ingestion batch runs
// through one of these so the product mutation and the ledger row commit
// or roll back together.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos ledgerapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories hands out repositories bound to the
// current transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// ProductRepo returns the product repository scoped to the current transaction
func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// TransactionRepo returns the ledger repository scoped to the current transaction
func (r *gormTransactionalRepositories) TransactionRepo() ledger.TransactionRepository {
	return NewGormTransactionRepository(r.tx)
}

var _ ledgerapp.TransactionScope = (*GormTransactionScope)(nil)
var _ ledgerapp.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
