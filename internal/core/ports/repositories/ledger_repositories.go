package repositories

import (
	"context"

	"github.com/innajain/ledger-sub000/internal/core/domain"
)

// LedgerReader projects the heterogeneous ledger rows referencing one entity
// into flat entries for the balance accumulator.
type LedgerReader interface {
	// FindEntriesByAccount returns every ledger entry touching the account:
	// opening balances, income credits, expense debits, transfer legs and
	// trade legs.
	FindEntriesByAccount(ctx context.Context, accountID string) ([]domain.LedgerEntry, error)

	// FindEntriesByBucket returns every ledger entry attributed to the
	// bucket: opening-balance and income allocations, expense debits, trade
	// replacement legs and reallocation legs.
	FindEntriesByBucket(ctx context.Context, bucketID string) ([]domain.LedgerEntry, error)
}

// LedgerRepositoryFacade combines ledger projection interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
}
