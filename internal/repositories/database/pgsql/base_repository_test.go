package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTx implements pgx.Tx with a configurable Rollback result. Only Rollback
// is expected to be called.
type stubTx struct {
	rollbackErr error
}

var _ pgx.Tx = (*stubTx)(nil)

func (t *stubTx) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("not implemented")
}
func (t *stubTx) Commit(ctx context.Context) error   { return errors.New("not implemented") }
func (t *stubTx) Rollback(ctx context.Context) error { return t.rollbackErr }
func (t *stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("not implemented")
}
func (t *stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *stubTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }
func (t *stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errors.New("not implemented")
}
func (t *stubTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}
func (t *stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}
func (t *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *stubTx) Conn() *pgx.Conn { return nil }

func TestRollback_AfterCommitIsNotAnError(t *testing.T) {
	repo := &BaseRepository{}

	err := repo.Rollback(context.Background(), &stubTx{rollbackErr: pgx.ErrTxClosed})
	assert.NoError(t, err)
}

func TestRollback_RealFailureIsReported(t *testing.T) {
	repo := &BaseRepository{}

	err := repo.Rollback(context.Background(), &stubTx{rollbackErr: errors.New("connection reset")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to rollback transaction")
}

func TestIsFKRestricted(t *testing.T) {
	fkViolation := &pgconn.PgError{Code: "23503", ConstraintName: "income_txns_account_id_fkey"}

	assert.True(t, isFKRestricted(fkViolation))
	assert.True(t, isFKRestricted(errors.Join(errors.New("delete account"), fkViolation)))
	assert.False(t, isFKRestricted(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isFKRestricted(errors.New("connection reset")))
	assert.False(t, isFKRestricted(nil))
}
