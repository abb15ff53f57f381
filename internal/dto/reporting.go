package dto

import (
	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/innajain/ledger-sub000/internal/utils"
	"github.com/shopspring/decimal"
)

// HoldingResponse is one priced holding row. Formatted fields use the Indian
// digit grouping convention; a missing price renders as an em dash and the
// row is counted in unknownPrices of the enclosing valuation.
type HoldingResponse struct {
	AssetID                string           `json:"assetID"`
	AssetName              string           `json:"assetName"`
	AssetType              domain.AssetType `json:"assetType"`
	Balance                decimal.Decimal  `json:"balance"`
	Price                  *decimal.Decimal `json:"price"`
	PriceAsOf              *string          `json:"priceAsOf"`
	MonetaryValue          *decimal.Decimal `json:"monetaryValue"`
	MonetaryValueFormatted string           `json:"monetaryValueFormatted"`
}

// ValuationResponse is the priced view of one entity's balances.
type ValuationResponse struct {
	Holdings            []HoldingResponse `json:"holdings"`
	TotalValue          decimal.Decimal   `json:"totalValue"`
	TotalValueFormatted string            `json:"totalValueFormatted"`
	UnknownPrices       int               `json:"unknownPrices"`
}

// AccountSummaryResponse is one row of the accounts list view.
type AccountSummaryResponse struct {
	Account             AccountResponse `json:"account"`
	TotalValue          decimal.Decimal `json:"totalValue"`
	TotalValueFormatted string          `json:"totalValueFormatted"`
	UnknownPrices       int             `json:"unknownPrices"`
}

// BucketSummaryResponse is one row of the buckets list view.
type BucketSummaryResponse struct {
	Bucket              BucketResponse  `json:"bucket"`
	TotalValue          decimal.Decimal `json:"totalValue"`
	TotalValueFormatted string          `json:"totalValueFormatted"`
	UnknownPrices       int             `json:"unknownPrices"`
}

// ExpendableMoneyResponse is the headline summary figure.
type ExpendableMoneyResponse struct {
	TotalValue          decimal.Decimal `json:"totalValue"`
	InvestmentValue     decimal.Decimal `json:"investmentValue"`
	EmergencyValue      decimal.Decimal `json:"emergencyValue"`
	Reserve             decimal.Decimal `json:"reserve"`
	Expendable          decimal.Decimal `json:"expendable"`
	ExpendableFormatted string          `json:"expendableFormatted"`
	UnknownPrices       int             `json:"unknownPrices"`
}

// ConservationEntryResponse is one asset's row of the conservation audit.
type ConservationEntryResponse struct {
	AssetID        string          `json:"assetID"`
	AccountBalance decimal.Decimal `json:"accountBalance"`
	BucketBalance  decimal.Decimal `json:"bucketBalance"`
	Difference     decimal.Decimal `json:"difference"`
}

// ConservationAuditResponse reports whether bucket attribution conserves
// value, per asset.
type ConservationAuditResponse struct {
	Entries  []ConservationEntryResponse `json:"entries"`
	Balanced bool                        `json:"balanced"`
}

// SummaryResponse is the top level summary view.
type SummaryResponse struct {
	Accounts   []AccountSummaryResponse `json:"accounts"`
	Buckets    []BucketSummaryResponse  `json:"buckets"`
	Expendable ExpendableMoneyResponse  `json:"expendable"`
}

// ToValuationResponse converts a domain.Valuation to its DTO. Display values
// are rounded to two decimal places here, at the presentation boundary.
func ToValuationResponse(v *domain.Valuation) ValuationResponse {
	holdings := make([]HoldingResponse, len(v.Holdings))
	for i, h := range v.Holdings {
		row := HoldingResponse{
			AssetID:                h.AssetID,
			AssetName:              h.AssetName,
			AssetType:              h.AssetType,
			Balance:                h.Balance,
			Price:                  h.Price,
			MonetaryValue:          h.MonetaryValue,
			MonetaryValueFormatted: utils.FormatINRRounded(h.MonetaryValue),
		}
		if h.PriceAsOf != nil {
			formatted := utils.FormatDate(*h.PriceAsOf)
			row.PriceAsOf = &formatted
		}
		holdings[i] = row
	}
	return ValuationResponse{
		Holdings:            holdings,
		TotalValue:          v.TotalValue,
		TotalValueFormatted: utils.FormatINRRounded(&v.TotalValue),
		UnknownPrices:       v.UnknownPrices,
	}
}

// ToConservationAuditResponse converts a domain.ConservationAudit to its DTO.
func ToConservationAuditResponse(a *domain.ConservationAudit) ConservationAuditResponse {
	entries := make([]ConservationEntryResponse, len(a.Entries))
	for i, e := range a.Entries {
		entries[i] = ConservationEntryResponse{
			AssetID:        e.AssetID,
			AccountBalance: e.AccountBalance,
			BucketBalance:  e.BucketBalance,
			Difference:     e.Difference,
		}
	}
	return ConservationAuditResponse{Entries: entries, Balanced: a.Balanced}
}

// ToExpendableMoneyResponse converts a domain.ExpendableMoney to its DTO.
func ToExpendableMoneyResponse(e *domain.ExpendableMoney) ExpendableMoneyResponse {
	return ExpendableMoneyResponse{
		TotalValue:          e.TotalValue,
		InvestmentValue:     e.InvestmentValue,
		EmergencyValue:      e.EmergencyValue,
		Reserve:             e.Reserve,
		Expendable:          e.Expendable,
		ExpendableFormatted: utils.FormatINRRounded(&e.Expendable),
		UnknownPrices:       e.UnknownPrices,
	}
}
