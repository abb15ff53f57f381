package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/innajain/ledger-sub000/internal/apperrors"
	"github.com/innajain/ledger-sub000/internal/core/domain"
	portsrepo "github.com/innajain/ledger-sub000/internal/core/ports/repositories"
	portssvc "github.com/innajain/ledger-sub000/internal/core/ports/services"
	"github.com/innajain/ledger-sub000/internal/dto"
)

// assetService provides business logic for assets.
type assetService struct {
	BaseService
	assetRepo portsrepo.AssetRepositoryFacade
}

// NewAssetService creates a new asset service.
func NewAssetService(assetRepo portsrepo.AssetRepositoryFacade) portssvc.AssetSvcFacade {
	return &assetService{assetRepo: assetRepo}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

// priceable reports whether an asset type needs an external code to resolve
// a price.
func priceable(t domain.AssetType) bool {
	return t == domain.AssetMutualFund || t == domain.AssetETF
}

// CreateAsset persists a new asset after validation.
func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error) {
	if priceable(req.Type) && (req.Code == nil || *req.Code == "") {
		return nil, fmt.Errorf("%w: asset type %s requires an external code", apperrors.ErrValidation, req.Type)
	}

	now := time.Now().UTC()
	asset := domain.Asset{
		AssetID: uuid.NewString(),
		Name:    req.Name,
		Type:    req.Type,
		Code:    req.Code,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	s.LogInfo(ctx, "Asset created", "asset_id", asset.AssetID, "type", string(asset.Type))
	return &asset, nil
}

// GetAssetByID retrieves a specific asset.
func (s *assetService) GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return asset, nil
}

// ListAssets retrieves all assets.
func (s *assetService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

// UpdateAsset updates an existing asset's details.
func (s *assetService) UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset for update: %w", err)
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Code != nil {
		asset.Code = req.Code
	}
	if priceable(asset.Type) && (asset.Code == nil || *asset.Code == "") {
		return nil, fmt.Errorf("%w: asset type %s requires an external code", apperrors.ErrValidation, asset.Type)
	}
	asset.LastUpdatedAt = time.Now().UTC()

	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}
	return asset, nil
}

// DeleteAsset removes an asset; dependent rows cascade in the store.
func (s *assetService) DeleteAsset(ctx context.Context, assetID string) error {
	if err := s.assetRepo.DeleteAsset(ctx, assetID); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	s.LogInfo(ctx, "Asset deleted", "asset_id", assetID)
	return nil
}
