package services

import (
	"context"

	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/innajain/ledger-sub000/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account with its opening balances.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, []domain.OpeningBalance, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account with its opening balances and
	// allocations atomically, validating each decomposition first.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount patches an account and, when provided, replaces its
	// opening-balance sub-collection after validation.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account and everything referencing it.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountCalculatorSvc defines balance operations for account data
type AccountCalculatorSvc interface {
	// GetAccountBalances folds the account's ledger entries into per-asset
	// balances.
	GetAccountBalances(ctx context.Context, accountID string) (map[string]decimal.Decimal, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCalculatorSvc
}
