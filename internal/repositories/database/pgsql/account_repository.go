package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/innajain/ledger-sub000/internal/apperrors"
	"github.com/innajain/ledger-sub000/internal/core/domain"
	portsrepo "github.com/innajain/ledger-sub000/internal/core/ports/repositories"
	"github.com/innajain/ledger-sub000/internal/models"
	"github.com/innajain/ledger-sub000/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// insertOpeningBalances queues the opening balance and allocation inserts for
// one account onto a batch.
func insertOpeningBalances(batch *pgx.Batch, openingBalances []domain.OpeningBalance) {
	obQuery := `
		INSERT INTO opening_balances (opening_balance_id, account_id, asset_id, quantity, date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	allocQuery := `
		INSERT INTO allocations (allocation_id, parent_id, bucket_id, quantity, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, ob := range openingBalances {
		m := mapping.ToModelOpeningBalance(ob)
		batch.Queue(obQuery, m.OpeningBalanceID, m.AccountID, m.AssetID, m.Quantity, m.Date, m.CreatedAt, m.LastUpdatedAt)
		for _, alloc := range ob.Allocations {
			am := mapping.ToModelAllocation(alloc)
			batch.Queue(allocQuery, am.AllocationID, am.ParentID, am.BucketID, am.Quantity, am.CreatedAt, am.LastUpdatedAt)
		}
	}
}

// SaveAccount inserts the account with its opening balances and allocations
// in one database transaction.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account, openingBalances []domain.OpeningBalance) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelAccount(account)
	accountQuery := `
		INSERT INTO accounts (account_id, name, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := tx.Exec(ctx, accountQuery, m.AccountID, m.Name, m.CreatedAt, m.LastUpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to insert account %s: %w", m.AccountID, err)
	}

	batch := &pgx.Batch{}
	insertOpeningBalances(batch, openingBalances)
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("%w: duplicate opening balance on account %s", apperrors.ErrDuplicate, m.AccountID)
			}
			return fmt.Errorf("failed to insert opening balances for account %s: %w", m.AccountID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT account_id, name, created_at, last_updated_at FROM accounts WHERE account_id = $1;`
	var m models.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(&m.AccountID, &m.Name, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// ListAccounts retrieves all accounts ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT account_id, name, created_at, last_updated_at FROM accounts ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var ms []models.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.AccountID, &m.Name, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// FindOpeningBalancesByAccount retrieves the opening balances of an account,
// each with its allocations attached.
func (r *PgxAccountRepository) FindOpeningBalancesByAccount(ctx context.Context, accountID string) ([]domain.OpeningBalance, error) {
	obQuery := `
		SELECT opening_balance_id, account_id, asset_id, quantity, date, created_at, last_updated_at
		FROM opening_balances
		WHERE account_id = $1
		ORDER BY date, opening_balance_id;
	`
	rows, err := r.Pool.Query(ctx, obQuery, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query opening balances for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var openingBalances []domain.OpeningBalance
	var obIDs []string
	for rows.Next() {
		var m models.OpeningBalance
		if err := rows.Scan(&m.OpeningBalanceID, &m.AccountID, &m.AssetID, &m.Quantity, &m.Date, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan opening balance: %w", err)
		}
		openingBalances = append(openingBalances, mapping.ToDomainOpeningBalance(m))
		obIDs = append(obIDs, m.OpeningBalanceID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading opening balance rows: %w", err)
	}
	if len(openingBalances) == 0 {
		return []domain.OpeningBalance{}, nil
	}

	allocQuery := `
		SELECT allocation_id, parent_id, bucket_id, quantity, created_at, last_updated_at
		FROM allocations
		WHERE parent_id = ANY($1)
		ORDER BY allocation_id;
	`
	allocRows, err := r.Pool.Query(ctx, allocQuery, obIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocations for account %s: %w", accountID, err)
	}
	defer allocRows.Close()

	byParent := make(map[string][]domain.Allocation)
	for allocRows.Next() {
		var m models.Allocation
		if err := allocRows.Scan(&m.AllocationID, &m.ParentID, &m.BucketID, &m.Quantity, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan allocation: %w", err)
		}
		byParent[m.ParentID] = append(byParent[m.ParentID], mapping.ToDomainAllocation(m))
	}
	if err := allocRows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading allocation rows: %w", err)
	}

	for i := range openingBalances {
		openingBalances[i].Allocations = byParent[openingBalances[i].OpeningBalanceID]
	}
	return openingBalances, nil
}

// UpdateAccount updates the account row and replaces its opening-balance
// sub-collection with the given post-mutation set, all in one database
// transaction.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account, openingBalances []domain.OpeningBalance) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelAccount(account)
	tag, err := tx.Exec(ctx, `UPDATE accounts SET name = $2, last_updated_at = $3 WHERE account_id = $1;`,
		m.AccountID, m.Name, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
	}

	// Replace the sub-collection wholesale: allocations first, then the
	// opening balances, then the post-mutation set.
	deleteAllocs := `
		DELETE FROM allocations
		WHERE parent_id IN (SELECT opening_balance_id FROM opening_balances WHERE account_id = $1);
	`
	if _, err := tx.Exec(ctx, deleteAllocs, m.AccountID); err != nil {
		return fmt.Errorf("failed to delete allocations for account %s: %w", m.AccountID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM opening_balances WHERE account_id = $1;`, m.AccountID); err != nil {
		return fmt.Errorf("failed to delete opening balances for account %s: %w", m.AccountID, err)
	}

	batch := &pgx.Batch{}
	insertOpeningBalances(batch, openingBalances)
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to insert opening balances for account %s: %w", m.AccountID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteAccount removes an account. Opening balances and their allocations go
// with it; the schema restricts the delete while any transaction leg still
// references the account.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deleteAllocs := `
		DELETE FROM allocations
		WHERE parent_id IN (SELECT opening_balance_id FROM opening_balances WHERE account_id = $1);
	`
	if _, err := tx.Exec(ctx, deleteAllocs, accountID); err != nil {
		return fmt.Errorf("failed to delete allocations for account %s: %w", accountID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		if isFKRestricted(err) {
			return fmt.Errorf("%w: account %s is still referenced by ledger history", apperrors.ErrValidation, accountID)
		}
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}

	return r.Commit(ctx, tx)
}
