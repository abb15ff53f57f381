package services

import (
	"context"

	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/innajain/ledger-sub000/internal/dto"
)

// AssetSvcFacade defines the asset service surface.
type AssetSvcFacade interface {
	// CreateAsset persists a new asset after validation.
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error)

	// GetAssetByID retrieves a specific asset.
	GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets retrieves all assets.
	ListAssets(ctx context.Context) ([]domain.Asset, error)

	// UpdateAsset updates an existing asset's details.
	UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error)

	// DeleteAsset removes an asset.
	DeleteAsset(ctx context.Context, assetID string) error
}
