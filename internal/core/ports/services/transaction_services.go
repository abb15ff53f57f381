package services

import (
	"context"

	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/innajain/ledger-sub000/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction with its sub-record.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions ordered by date descending.
	ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines create/update/delete operations per kind.
// Every mutation validates its decomposition before anything is written; a
// failed validation leaves the store unchanged.
type TransactionWriterSvc interface {
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest) (*domain.Transaction, error)
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Transaction, error)
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (*domain.Transaction, error)
	CreateTrade(ctx context.Context, req dto.CreateTradeRequest) (*domain.Transaction, error)

	UpdateIncome(ctx context.Context, transactionID string, req dto.UpdateIncomeRequest) (*domain.Transaction, error)
	UpdateExpense(ctx context.Context, transactionID string, req dto.UpdateExpenseRequest) (*domain.Transaction, error)
	UpdateTransfer(ctx context.Context, transactionID string, req dto.UpdateTransferRequest) (*domain.Transaction, error)
	UpdateTrade(ctx context.Context, transactionID string, req dto.UpdateTradeRequest) (*domain.Transaction, error)

	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
