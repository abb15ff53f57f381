package dto

import (
	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/innajain/ledger-sub000/internal/utils"
	"github.com/shopspring/decimal"
)

// AllocationRequest assigns a portion of a parent quantity to a bucket.
type AllocationRequest struct {
	BucketID string          `json:"bucketID" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required,dgt0"`
}

// OpeningBalanceRequest declares one opening balance with its allocations.
type OpeningBalanceRequest struct {
	AssetID     string              `json:"assetID" binding:"required"`
	Quantity    decimal.Decimal     `json:"quantity" binding:"required,dgt0"`
	Date        string              `json:"date" binding:"required"` // DD-MM-YYYY
	Allocations []AllocationRequest `json:"allocations" binding:"required,min=1,dive"`
}

// CreateAccountRequest defines the data needed to create a new account with
// its opening balances, all persisted atomically.
type CreateAccountRequest struct {
	Name            string                  `json:"name" binding:"required"`
	OpeningBalances []OpeningBalanceRequest `json:"openingBalances" binding:"dive"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// A nil OpeningBalances leaves the sub-collection untouched; a non-nil slice
// is the full post-mutation set and replaces it.
type UpdateAccountRequest struct {
	Name            *string                  `json:"name"`
	OpeningBalances *[]OpeningBalanceRequest `json:"openingBalances" binding:"omitempty,dive"`
}

// AllocationResponse mirrors domain.Allocation.
type AllocationResponse struct {
	AllocationID string          `json:"allocationID"`
	BucketID     string          `json:"bucketID"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// OpeningBalanceResponse mirrors domain.OpeningBalance.
type OpeningBalanceResponse struct {
	OpeningBalanceID string               `json:"openingBalanceID"`
	AssetID          string               `json:"assetID"`
	Quantity         decimal.Decimal      `json:"quantity"`
	Date             string               `json:"date"`
	Allocations      []AllocationResponse `json:"allocations"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string                   `json:"accountID"`
	Name            string                   `json:"name"`
	OpeningBalances []OpeningBalanceResponse `json:"openingBalances,omitempty"`
}

// ToAllocationResponse converts a domain.Allocation to its DTO.
func ToAllocationResponse(a domain.Allocation) AllocationResponse {
	return AllocationResponse{
		AllocationID: a.AllocationID,
		BucketID:     a.BucketID,
		Quantity:     a.Quantity,
	}
}

// ToOpeningBalanceResponse converts a domain.OpeningBalance to its DTO.
func ToOpeningBalanceResponse(ob domain.OpeningBalance) OpeningBalanceResponse {
	allocs := make([]AllocationResponse, len(ob.Allocations))
	for i, a := range ob.Allocations {
		allocs[i] = ToAllocationResponse(a)
	}
	return OpeningBalanceResponse{
		OpeningBalanceID: ob.OpeningBalanceID,
		AssetID:          ob.AssetID,
		Quantity:         ob.Quantity,
		Date:             utils.FormatDate(ob.Date),
		Allocations:      allocs,
	}
}

// ToAccountResponse converts a domain.Account and its opening balances to an
// AccountResponse DTO.
func ToAccountResponse(acc *domain.Account, openingBalances []domain.OpeningBalance) AccountResponse {
	obs := make([]OpeningBalanceResponse, len(openingBalances))
	for i, ob := range openingBalances {
		obs[i] = ToOpeningBalanceResponse(ob)
	}
	return AccountResponse{
		AccountID:       acc.AccountID,
		Name:            acc.Name,
		OpeningBalances: obs,
	}
}

// ToListAccountResponse converts a slice of domain.Account to AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i], nil)
	}
	return res
}
