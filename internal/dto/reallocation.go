package dto

import (
	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/innajain/ledger-sub000/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateReallocationRequest moves bucket attribution of an asset quantity
// from one bucket to another.
type CreateReallocationRequest struct {
	FromBucketID string          `json:"fromBucketID" binding:"required"`
	ToBucketID   string          `json:"toBucketID" binding:"required"`
	AssetID      string          `json:"assetID" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required,dgt0"`
	Date         string          `json:"date" binding:"required"` // DD-MM-YYYY
}

// ReallocationResponse defines the data returned for a reallocation.
type ReallocationResponse struct {
	ReallocationID string          `json:"reallocationID"`
	FromBucketID   string          `json:"fromBucketID"`
	ToBucketID     string          `json:"toBucketID"`
	AssetID        string          `json:"assetID"`
	Quantity       decimal.Decimal `json:"quantity"`
	Date           string          `json:"date"`
}

// ToReallocationResponse converts a domain.Reallocation to its DTO.
func ToReallocationResponse(r *domain.Reallocation) ReallocationResponse {
	return ReallocationResponse{
		ReallocationID: r.ReallocationID,
		FromBucketID:   r.FromBucketID,
		ToBucketID:     r.ToBucketID,
		AssetID:        r.AssetID,
		Quantity:       r.Quantity,
		Date:           utils.FormatDate(r.Date),
	}
}

// ToListReallocationResponse converts domain reallocations to DTOs.
func ToListReallocationResponse(reallocations []domain.Reallocation) []ReallocationResponse {
	res := make([]ReallocationResponse, len(reallocations))
	for i := range reallocations {
		res[i] = ToReallocationResponse(&reallocations[i])
	}
	return res
}
