package repositories

import (
	"context"

	"github.com/innajain/ledger-sub000/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its kind-specific
	// sub-record and decomposition entries.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions ordered by date descending.
	ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
// Each save touches the transaction row, its sub-record and all decomposition
// entries inside a single database transaction; nothing partial is ever
// observable.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction of any kind.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates a transaction and replaces its decomposition
	// entries with the given post-mutation set.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction and its dependent rows.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
