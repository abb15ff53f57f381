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

type PgxReallocationRepository struct {
	BaseRepository
}

// newPgxReallocationRepository creates a new repository for reallocation data.
func newPgxReallocationRepository(pool *pgxpool.Pool) portsrepo.ReallocationRepositoryFacade {
	return &PgxReallocationRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReallocationRepositoryFacade = (*PgxReallocationRepository)(nil)

const reallocationColumns = `reallocation_id, from_bucket_id, to_bucket_id, asset_id, quantity, date, created_at, last_updated_at`

func scanReallocation(row pgx.Row) (models.Reallocation, error) {
	var m models.Reallocation
	err := row.Scan(&m.ReallocationID, &m.FromBucketID, &m.ToBucketID, &m.AssetID, &m.Quantity, &m.Date, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}

// SaveReallocation inserts a new reallocation.
func (r *PgxReallocationRepository) SaveReallocation(ctx context.Context, reallocation domain.Reallocation) error {
	m := mapping.ToModelReallocation(reallocation)
	query := `
		INSERT INTO reallocations (reallocation_id, from_bucket_id, to_bucket_id, asset_id, quantity, date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query, m.ReallocationID, m.FromBucketID, m.ToBucketID, m.AssetID, m.Quantity, m.Date, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: reallocation %s already exists", apperrors.ErrDuplicate, m.ReallocationID)
		}
		return fmt.Errorf("failed to save reallocation %s: %w", m.ReallocationID, err)
	}
	return nil
}

// FindReallocationByID retrieves a reallocation by its ID.
func (r *PgxReallocationRepository) FindReallocationByID(ctx context.Context, reallocationID string) (*domain.Reallocation, error) {
	query := `SELECT ` + reallocationColumns + ` FROM reallocations WHERE reallocation_id = $1;`
	m, err := scanReallocation(r.Pool.QueryRow(ctx, query, reallocationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: reallocation %s", apperrors.ErrNotFound, reallocationID)
		}
		return nil, fmt.Errorf("failed to find reallocation %s: %w", reallocationID, err)
	}
	d := mapping.ToDomainReallocation(m)
	return &d, nil
}

// ListReallocations retrieves reallocations ordered by date descending.
func (r *PgxReallocationRepository) ListReallocations(ctx context.Context, limit int, offset int) ([]domain.Reallocation, error) {
	query := `
		SELECT ` + reallocationColumns + `
		FROM reallocations
		ORDER BY date DESC, reallocation_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reallocations: %w", err)
	}
	defer rows.Close()

	var ms []models.Reallocation
	for rows.Next() {
		m, err := scanReallocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reallocation: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading reallocation rows: %w", err)
	}
	return mapping.ToDomainReallocationSlice(ms), nil
}

// DeleteReallocation removes a reallocation.
func (r *PgxReallocationRepository) DeleteReallocation(ctx context.Context, reallocationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM reallocations WHERE reallocation_id = $1;`, reallocationID)
	if err != nil {
		return fmt.Errorf("failed to delete reallocation %s: %w", reallocationID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: reallocation %s", apperrors.ErrNotFound, reallocationID)
	}
	return nil
}
