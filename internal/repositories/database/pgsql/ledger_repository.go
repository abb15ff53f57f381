package pgsql

import (
	"context"
	"fmt"

	"github.com/innajain/ledger-sub000/internal/core/domain"
	portsrepo "github.com/innajain/ledger-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ledgerRepository projects the heterogeneous ledger tables into flat entries
// for the balance accumulator. The projections are UNION ALL queries so one
// round trip yields everything touching the entity.
type ledgerRepository struct {
	BaseRepository
}

// newLedgerRepository creates a new ledger projection repository.
func newLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &ledgerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*ledgerRepository)(nil)

// accountEntriesQuery gathers every row affecting one account's holdings:
// opening balances, income credits, expense debits, both transfer directions
// and both trade legs. Reallocations never touch accounts.
const accountEntriesQuery = `
	SELECT 'OPENING_BALANCE' AS kind, asset_id, quantity
	FROM opening_balances WHERE account_id = $1
	UNION ALL
	SELECT 'INCOME', i.asset_id, i.quantity
	FROM income_txns i WHERE i.account_id = $1
	UNION ALL
	SELECT 'EXPENSE', e.asset_id, e.quantity
	FROM expense_txns e WHERE e.account_id = $1
	UNION ALL
	SELECT 'TRANSFER_OUT', t.asset_id, t.quantity
	FROM transfer_txns t WHERE t.from_account_id = $1
	UNION ALL
	SELECT 'TRANSFER_IN', t.asset_id, t.quantity
	FROM transfer_txns t WHERE t.to_account_id = $1
	UNION ALL
	SELECT 'TRADE_DEBIT', tr.debit_asset_id, tr.debit_quantity
	FROM trade_txns tr WHERE tr.debit_account_id = $1
	UNION ALL
	SELECT 'TRADE_CREDIT', tr.credit_asset_id, tr.credit_quantity
	FROM trade_txns tr WHERE tr.credit_account_id = $1;
`

// bucketEntriesQuery gathers every row attributed to one bucket: allocation
// slices of opening balances and incomes, expense debits, trade replacement
// legs and both reallocation directions.
const bucketEntriesQuery = `
	SELECT 'OPENING_BALANCE' AS kind, ob.asset_id, al.quantity
	FROM allocations al
	JOIN opening_balances ob ON ob.opening_balance_id = al.parent_id
	WHERE al.bucket_id = $1
	UNION ALL
	SELECT 'INCOME', i.asset_id, al.quantity
	FROM allocations al
	JOIN income_txns i ON i.transaction_id = al.parent_id
	WHERE al.bucket_id = $1
	UNION ALL
	SELECT 'EXPENSE', e.asset_id, e.quantity
	FROM expense_txns e WHERE e.bucket_id = $1
	UNION ALL
	SELECT 'TRADE_DEBIT', tr.debit_asset_id, rep.debit_quantity
	FROM asset_replacements rep
	JOIN trade_txns tr ON tr.transaction_id = rep.transaction_id
	WHERE rep.bucket_id = $1
	UNION ALL
	SELECT 'TRADE_CREDIT', tr.credit_asset_id, rep.credit_quantity
	FROM asset_replacements rep
	JOIN trade_txns tr ON tr.transaction_id = rep.transaction_id
	WHERE rep.bucket_id = $1
	UNION ALL
	SELECT 'REALLOCATION_OUT', ra.asset_id, ra.quantity
	FROM reallocations ra WHERE ra.from_bucket_id = $1
	UNION ALL
	SELECT 'REALLOCATION_IN', ra.asset_id, ra.quantity
	FROM reallocations ra WHERE ra.to_bucket_id = $1;
`

func (r *ledgerRepository) queryEntries(ctx context.Context, query, entityID string) ([]domain.LedgerEntry, error) {
	rows, err := r.Pool.Query(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for %s: %w", entityID, err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		var kind string
		if err := rows.Scan(&kind, &e.AssetID, &e.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		e.Kind = domain.EntryKind(kind)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading ledger entry rows: %w", err)
	}
	return entries, nil
}

// FindEntriesByAccount returns every ledger entry touching the account.
func (r *ledgerRepository) FindEntriesByAccount(ctx context.Context, accountID string) ([]domain.LedgerEntry, error) {
	return r.queryEntries(ctx, accountEntriesQuery, accountID)
}

// FindEntriesByBucket returns every ledger entry attributed to the bucket.
func (r *ledgerRepository) FindEntriesByBucket(ctx context.Context, bucketID string) ([]domain.LedgerEntry, error) {
	return r.queryEntries(ctx, bucketEntriesQuery, bucketID)
}
