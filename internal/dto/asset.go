package dto

import (
	"github.com/innajain/ledger-sub000/internal/core/domain"
)

// CreateAssetRequest defines the data needed to create a new asset.
type CreateAssetRequest struct {
	Name string           `json:"name" binding:"required"`
	Type domain.AssetType `json:"type" binding:"required,oneof=CURRENCY MUTUAL_FUND ETF OTHER"`
	// Code is the AMFI scheme code or ticker symbol; required for priced
	// asset types, checked in the service.
	Code *string `json:"code"`
}

// UpdateAssetRequest defines the data allowed for updating an asset.
// Pointers distinguish "not provided" from zero values.
type UpdateAssetRequest struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	AssetID string           `json:"assetID"`
	Name    string           `json:"name"`
	Type    domain.AssetType `json:"type"`
	Code    *string          `json:"code"`
}

// ToAssetResponse converts a domain.Asset to AssetResponse DTO
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID: a.AssetID,
		Name:    a.Name,
		Type:    a.Type,
		Code:    a.Code,
	}
}

// ToListAssetResponse converts a slice of domain.Asset to AssetResponse DTOs
func ToListAssetResponse(assets []domain.Asset) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i := range assets {
		res[i] = ToAssetResponse(&assets[i])
	}
	return res
}
