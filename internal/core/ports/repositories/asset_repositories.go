package repositories

import (
	"context"

	"github.com/innajain/ledger-sub000/internal/core/domain"
)

// AssetReader defines read operations for asset data
type AssetReader interface {
	// FindAssetByID retrieves a specific asset by its unique identifier.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// FindAssetsByIDs retrieves multiple assets by their IDs.
	FindAssetsByIDs(ctx context.Context, assetIDs []string) (map[string]domain.Asset, error)

	// ListAssets retrieves all assets.
	ListAssets(ctx context.Context) ([]domain.Asset, error)
}

// AssetWriter defines write operations for asset data
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAsset updates an existing asset's details.
	UpdateAsset(ctx context.Context, asset domain.Asset) error

	// DeleteAsset removes an asset; the store cascades to dependent rows.
	DeleteAsset(ctx context.Context, assetID string) error
}

// AssetRepositoryFacade combines all asset-related repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
