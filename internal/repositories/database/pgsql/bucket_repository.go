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

type PgxBucketRepository struct {
	BaseRepository
}

// newPgxBucketRepository creates a new repository for purpose bucket data.
func newPgxBucketRepository(pool *pgxpool.Pool) portsrepo.BucketRepositoryFacade {
	return &PgxBucketRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BucketRepositoryFacade = (*PgxBucketRepository)(nil)

const bucketColumns = `bucket_id, name, created_at, last_updated_at`

func scanBucket(row pgx.Row) (models.PurposeBucket, error) {
	var m models.PurposeBucket
	err := row.Scan(&m.BucketID, &m.Name, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}

// SaveBucket inserts a new bucket. Names are unique.
func (r *PgxBucketRepository) SaveBucket(ctx context.Context, bucket domain.PurposeBucket) error {
	m := mapping.ToModelBucket(bucket)
	query := `
		INSERT INTO purpose_buckets (bucket_id, name, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, m.BucketID, m.Name, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: bucket named %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save bucket %s: %w", m.BucketID, err)
	}
	return nil
}

// FindBucketByID retrieves a bucket by its ID.
func (r *PgxBucketRepository) FindBucketByID(ctx context.Context, bucketID string) (*domain.PurposeBucket, error) {
	query := `SELECT ` + bucketColumns + ` FROM purpose_buckets WHERE bucket_id = $1;`
	m, err := scanBucket(r.Pool.QueryRow(ctx, query, bucketID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: bucket %s", apperrors.ErrNotFound, bucketID)
		}
		return nil, fmt.Errorf("failed to find bucket %s: %w", bucketID, err)
	}
	d := mapping.ToDomainBucket(m)
	return &d, nil
}

// FindBucketByName retrieves a bucket by its exact name.
func (r *PgxBucketRepository) FindBucketByName(ctx context.Context, name string) (*domain.PurposeBucket, error) {
	query := `SELECT ` + bucketColumns + ` FROM purpose_buckets WHERE name = $1;`
	m, err := scanBucket(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: bucket named %q", apperrors.ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to find bucket named %q: %w", name, err)
	}
	d := mapping.ToDomainBucket(m)
	return &d, nil
}

// ListBuckets retrieves all buckets ordered by name.
func (r *PgxBucketRepository) ListBuckets(ctx context.Context) ([]domain.PurposeBucket, error) {
	query := `SELECT ` + bucketColumns + ` FROM purpose_buckets ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}
	defer rows.Close()

	var ms []models.PurposeBucket
	for rows.Next() {
		m, err := scanBucket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bucket: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading bucket rows: %w", err)
	}
	return mapping.ToDomainBucketSlice(ms), nil
}

// UpdateBucket updates an existing bucket's details.
func (r *PgxBucketRepository) UpdateBucket(ctx context.Context, bucket domain.PurposeBucket) error {
	m := mapping.ToModelBucket(bucket)
	query := `
		UPDATE purpose_buckets
		SET name = $2, last_updated_at = $3
		WHERE bucket_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.BucketID, m.Name, m.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: bucket named %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to update bucket %s: %w", m.BucketID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: bucket %s", apperrors.ErrNotFound, m.BucketID)
	}
	return nil
}

// DeleteBucket removes a bucket. The schema restricts the delete while any
// allocation, expense, replacement or reallocation still references it.
func (r *PgxBucketRepository) DeleteBucket(ctx context.Context, bucketID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM purpose_buckets WHERE bucket_id = $1;`, bucketID)
	if err != nil {
		if isFKRestricted(err) {
			return fmt.Errorf("%w: bucket %s is still referenced by ledger history", apperrors.ErrValidation, bucketID)
		}
		return fmt.Errorf("failed to delete bucket %s: %w", bucketID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: bucket %s", apperrors.ErrNotFound, bucketID)
	}
	return nil
}
