package ledgerapp

import (
	"context"

	"github.com/sellerledger/backend/internal/domain/catalog"
	"github.com/sellerledger/backend/internal/domain/ledger"
)

// TransactionScope provides transactional access to the repositories a
// stock-affecting unit of work touches. Everything executed within one
// scope commits or rolls back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories scoped to
// the current transaction. The ledger row and the product it mutates must
// always be written through the same scope so that a frozen cost is never
// committed without its matching stock mutation.
type TransactionalRepositories interface {
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// TransactionRepo returns the ledger transaction repository scoped to the current transaction
	TransactionRepo() ledger.TransactionRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for tests.
type NoOpTransactionScope struct {
	productRepo     catalog.ProductRepository
	transactionRepo ledger.TransactionRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	transactionRepo ledger.TransactionRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository.
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// TransactionRepo returns the ledger transaction repository.
func (s *NoOpTransactionScope) TransactionRepo() ledger.TransactionRepository {
	return s.transactionRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
