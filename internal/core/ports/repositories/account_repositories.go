package repositories

import (
	"context"

	"github.com/innajain/ledger-sub000/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// FindOpeningBalancesByAccount retrieves the opening balances of an
	// account, each with its allocations.
	FindOpeningBalancesByAccount(ctx context.Context, accountID string) ([]domain.OpeningBalance, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account together with its opening balances
	// and their allocations in one database transaction.
	SaveAccount(ctx context.Context, account domain.Account, openingBalances []domain.OpeningBalance) error

	// UpdateAccount updates the account row and replaces its opening-balance
	// sub-collection with the given post-mutation set, all in one database
	// transaction.
	UpdateAccount(ctx context.Context, account domain.Account, openingBalances []domain.OpeningBalance) error

	// DeleteAccount removes an account; the store cascades to opening
	// balances and allocations.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
