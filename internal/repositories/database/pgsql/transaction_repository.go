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

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const (
	insertAllocationQuery = `
		INSERT INTO allocations (allocation_id, parent_id, bucket_id, quantity, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	insertReplacementQuery = `
		INSERT INTO asset_replacements (replacement_id, transaction_id, bucket_id, debit_quantity, credit_quantity, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
)

// queueSubRecord queues the kind-specific sub-record and decomposition
// inserts for a transaction onto a batch.
func queueSubRecord(batch *pgx.Batch, txn domain.Transaction) error {
	switch {
	case txn.Income != nil:
		batch.Queue(`
			INSERT INTO income_txns (transaction_id, asset_id, account_id, quantity)
			VALUES ($1, $2, $3, $4);
		`, txn.TransactionID, txn.Income.AssetID, txn.Income.AccountID, txn.Income.Quantity)
		for _, alloc := range txn.Income.Allocations {
			am := mapping.ToModelAllocation(alloc)
			batch.Queue(insertAllocationQuery, am.AllocationID, am.ParentID, am.BucketID, am.Quantity, am.CreatedAt, am.LastUpdatedAt)
		}
	case txn.Expense != nil:
		batch.Queue(`
			INSERT INTO expense_txns (transaction_id, asset_id, account_id, quantity, bucket_id)
			VALUES ($1, $2, $3, $4, $5);
		`, txn.TransactionID, txn.Expense.AssetID, txn.Expense.AccountID, txn.Expense.Quantity, txn.Expense.BucketID)
	case txn.Transfer != nil:
		batch.Queue(`
			INSERT INTO transfer_txns (transaction_id, asset_id, from_account_id, to_account_id, quantity)
			VALUES ($1, $2, $3, $4, $5);
		`, txn.TransactionID, txn.Transfer.AssetID, txn.Transfer.FromAccountID, txn.Transfer.ToAccountID, txn.Transfer.Quantity)
	case txn.Trade != nil:
		batch.Queue(`
			INSERT INTO trade_txns (transaction_id, debit_asset_id, debit_account_id, debit_quantity, debit_date,
				credit_asset_id, credit_account_id, credit_quantity, credit_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
		`, txn.TransactionID,
			txn.Trade.DebitAssetID, txn.Trade.DebitAccountID, txn.Trade.DebitQuantity, txn.Trade.DebitDate,
			txn.Trade.CreditAssetID, txn.Trade.CreditAccountID, txn.Trade.CreditQuantity, txn.Trade.CreditDate)
		for _, rep := range txn.Trade.Replacements {
			rm := mapping.ToModelReplacement(rep)
			batch.Queue(insertReplacementQuery, rm.ReplacementID, rm.TransactionID, rm.BucketID, rm.DebitQuantity, rm.CreditQuantity, rm.CreatedAt, rm.LastUpdatedAt)
		}
	default:
		return fmt.Errorf("transaction %s has no sub-record", txn.TransactionID)
	}
	return nil
}

// SaveTransaction persists the transaction row, its sub-record and all
// decomposition entries in one database transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, type, date, description, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := tx.Exec(ctx, query, m.TransactionID, m.Type, m.Date, m.Description, m.CreatedAt, m.LastUpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}

	batch := &pgx.Batch{}
	if err := queueSubRecord(batch, txn); err != nil {
		return err
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert sub-record for transaction %s: %w", m.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// deleteSubRecords removes a transaction's sub-record rows and decomposition
// entries inside tx. The transaction row itself is untouched.
func (r *PgxTransactionRepository) deleteSubRecords(ctx context.Context, tx pgx.Tx, transactionID string) error {
	statements := []string{
		`DELETE FROM allocations WHERE parent_id = $1;`,
		`DELETE FROM asset_replacements WHERE transaction_id = $1;`,
		`DELETE FROM income_txns WHERE transaction_id = $1;`,
		`DELETE FROM expense_txns WHERE transaction_id = $1;`,
		`DELETE FROM transfer_txns WHERE transaction_id = $1;`,
		`DELETE FROM trade_txns WHERE transaction_id = $1;`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, transactionID); err != nil {
			return fmt.Errorf("failed to delete sub-records of transaction %s: %w", transactionID, err)
		}
	}
	return nil
}

// UpdateTransaction updates the transaction row and replaces its sub-record
// and decomposition entries with the given post-mutation state, all in one
// database transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET type = $2, date = $3, description = $4, last_updated_at = $5
		WHERE transaction_id = $1;
	`
	tag, err := tx.Exec(ctx, query, m.TransactionID, m.Type, m.Date, m.Description, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, m.TransactionID)
	}

	if err := r.deleteSubRecords(ctx, tx, m.TransactionID); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	if err := queueSubRecord(batch, txn); err != nil {
		return err
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert sub-record for transaction %s: %w", m.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes a transaction and everything hanging off it.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.deleteSubRecords(ctx, tx, transactionID); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction with its sub-record and
// decomposition entries.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, type, date, description, created_at, last_updated_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID, &m.Type, &m.Date, &m.Description, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	if err := r.loadSubRecord(ctx, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListTransactions retrieves transactions ordered by date descending, with
// sub-records attached.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, type, date, description, created_at, last_updated_at
		FROM transactions
		ORDER BY date DESC, transaction_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.TransactionID, &m.Type, &m.Date, &m.Description, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transaction rows: %w", err)
	}

	for i := range txns {
		if err := r.loadSubRecord(ctx, &txns[i]); err != nil {
			return nil, err
		}
	}
	return txns, nil
}

// loadSubRecord attaches the kind-specific sub-record to a transaction shell.
func (r *PgxTransactionRepository) loadSubRecord(ctx context.Context, txn *domain.Transaction) error {
	switch {
	case txn.Type == domain.TxnIncome:
		return r.loadIncome(ctx, txn)
	case txn.Type == domain.TxnExpense:
		return r.loadExpense(ctx, txn)
	case txn.Type.IsTransfer():
		return r.loadTransfer(ctx, txn)
	case txn.Type == domain.TxnAssetTrade:
		return r.loadTrade(ctx, txn)
	default:
		return fmt.Errorf("transaction %s has unknown type %s", txn.TransactionID, txn.Type)
	}
}

func (r *PgxTransactionRepository) loadIncome(ctx context.Context, txn *domain.Transaction) error {
	query := `SELECT asset_id, account_id, quantity FROM income_txns WHERE transaction_id = $1;`
	var income domain.IncomeTxn
	err := r.Pool.QueryRow(ctx, query, txn.TransactionID).Scan(&income.AssetID, &income.AccountID, &income.Quantity)
	if err != nil {
		return fmt.Errorf("failed to load income sub-record of %s: %w", txn.TransactionID, err)
	}

	allocations, err := r.loadAllocations(ctx, txn.TransactionID)
	if err != nil {
		return err
	}
	income.Allocations = allocations
	txn.Income = &income
	return nil
}

func (r *PgxTransactionRepository) loadAllocations(ctx context.Context, parentID string) ([]domain.Allocation, error) {
	query := `
		SELECT allocation_id, parent_id, bucket_id, quantity, created_at, last_updated_at
		FROM allocations
		WHERE parent_id = $1
		ORDER BY allocation_id;
	`
	rows, err := r.Pool.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocations of %s: %w", parentID, err)
	}
	defer rows.Close()

	var allocations []domain.Allocation
	for rows.Next() {
		var m models.Allocation
		if err := rows.Scan(&m.AllocationID, &m.ParentID, &m.BucketID, &m.Quantity, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan allocation: %w", err)
		}
		allocations = append(allocations, mapping.ToDomainAllocation(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading allocation rows: %w", err)
	}
	return allocations, nil
}

func (r *PgxTransactionRepository) loadExpense(ctx context.Context, txn *domain.Transaction) error {
	query := `SELECT asset_id, account_id, quantity, bucket_id FROM expense_txns WHERE transaction_id = $1;`
	var expense domain.ExpenseTxn
	err := r.Pool.QueryRow(ctx, query, txn.TransactionID).Scan(&expense.AssetID, &expense.AccountID, &expense.Quantity, &expense.BucketID)
	if err != nil {
		return fmt.Errorf("failed to load expense sub-record of %s: %w", txn.TransactionID, err)
	}
	txn.Expense = &expense
	return nil
}

func (r *PgxTransactionRepository) loadTransfer(ctx context.Context, txn *domain.Transaction) error {
	query := `SELECT asset_id, from_account_id, to_account_id, quantity FROM transfer_txns WHERE transaction_id = $1;`
	var transfer domain.TransferTxn
	err := r.Pool.QueryRow(ctx, query, txn.TransactionID).Scan(&transfer.AssetID, &transfer.FromAccountID, &transfer.ToAccountID, &transfer.Quantity)
	if err != nil {
		return fmt.Errorf("failed to load transfer sub-record of %s: %w", txn.TransactionID, err)
	}
	txn.Transfer = &transfer
	return nil
}

func (r *PgxTransactionRepository) loadTrade(ctx context.Context, txn *domain.Transaction) error {
	query := `
		SELECT debit_asset_id, debit_account_id, debit_quantity, debit_date,
		       credit_asset_id, credit_account_id, credit_quantity, credit_date
		FROM trade_txns
		WHERE transaction_id = $1;
	`
	var trade domain.AssetTradeTxn
	err := r.Pool.QueryRow(ctx, query, txn.TransactionID).Scan(
		&trade.DebitAssetID, &trade.DebitAccountID, &trade.DebitQuantity, &trade.DebitDate,
		&trade.CreditAssetID, &trade.CreditAccountID, &trade.CreditQuantity, &trade.CreditDate)
	if err != nil {
		return fmt.Errorf("failed to load trade sub-record of %s: %w", txn.TransactionID, err)
	}

	repQuery := `
		SELECT replacement_id, transaction_id, bucket_id, debit_quantity, credit_quantity, created_at, last_updated_at
		FROM asset_replacements
		WHERE transaction_id = $1
		ORDER BY replacement_id;
	`
	rows, err := r.Pool.Query(ctx, repQuery, txn.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to query replacements of %s: %w", txn.TransactionID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.AssetReplacement
		if err := rows.Scan(&m.ReplacementID, &m.TransactionID, &m.BucketID, &m.DebitQuantity, &m.CreditQuantity, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return fmt.Errorf("failed to scan replacement: %w", err)
		}
		trade.Replacements = append(trade.Replacements, mapping.ToDomainReplacement(m))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed reading replacement rows: %w", err)
	}

	txn.Trade = &trade
	return nil
}
