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

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for asset data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

const assetColumns = `asset_id, name, type, code, created_at, last_updated_at`

func scanAsset(row pgx.Row) (models.Asset, error) {
	var m models.Asset
	err := row.Scan(&m.AssetID, &m.Name, &m.Type, &m.Code, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}

// SaveAsset inserts a new asset.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)
	query := `
		INSERT INTO assets (asset_id, name, type, code, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.AssetID, m.Name, m.Type, m.Code, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: asset %s already exists", apperrors.ErrDuplicate, m.AssetID)
		}
		return fmt.Errorf("failed to save asset %s: %w", m.AssetID, err)
	}
	return nil
}

// FindAssetByID retrieves an asset by its ID.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1;`
	m, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: asset %s", apperrors.ErrNotFound, assetID)
		}
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}
	d := mapping.ToDomainAsset(m)
	return &d, nil
}

// FindAssetsByIDs retrieves multiple assets, keyed by ID. IDs with no
// matching row are absent from the map, not an error.
func (r *PgxAssetRepository) FindAssetsByIDs(ctx context.Context, assetIDs []string) (map[string]domain.Asset, error) {
	if len(assetIDs) == 0 {
		return map[string]domain.Asset{}, nil
	}
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, assetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Asset, len(assetIDs))
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		result[m.AssetID] = mapping.ToDomainAsset(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading asset rows: %w", err)
	}
	return result, nil
}

// ListAssets retrieves all assets ordered by name.
func (r *PgxAssetRepository) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var ms []models.Asset
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading asset rows: %w", err)
	}
	return mapping.ToDomainAssetSlice(ms), nil
}

// UpdateAsset updates an existing asset's details.
func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)
	query := `
		UPDATE assets
		SET name = $2, type = $3, code = $4, last_updated_at = $5
		WHERE asset_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.AssetID, m.Name, m.Type, m.Code, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", m.AssetID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: asset %s", apperrors.ErrNotFound, m.AssetID)
	}
	return nil
}

// DeleteAsset removes an asset. The schema restricts the delete while any
// ledger row still references it.
func (r *PgxAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM assets WHERE asset_id = $1;`, assetID)
	if err != nil {
		if isFKRestricted(err) {
			return fmt.Errorf("%w: asset %s is still referenced by ledger history", apperrors.ErrValidation, assetID)
		}
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: asset %s", apperrors.ErrNotFound, assetID)
	}
	return nil
}
