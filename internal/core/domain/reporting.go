package domain

import "github.com/shopspring/decimal"

// AccountSummary is one row of the accounts list view.
type AccountSummary struct {
	Account       Account         `json:"account"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	UnknownPrices int             `json:"unknownPrices"`
}

// BucketSummary is one row of the purpose buckets list view.
type BucketSummary struct {
	Bucket        PurposeBucket   `json:"bucket"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	UnknownPrices int             `json:"unknownPrices"`
}

// ConservationEntry is one asset's row of the conservation audit: its balance
// as seen by accounts versus as attributed across purpose buckets.
type ConservationEntry struct {
	AssetID        string          `json:"assetID"`
	AccountBalance decimal.Decimal `json:"accountBalance"`
	BucketBalance  decimal.Decimal `json:"bucketBalance"`
	Difference     decimal.Decimal `json:"difference"`
}

// ConservationAudit reports whether bucket attribution conserves value.
// Reallocations and trade replacements are notional bucket-level entries with
// no account-side movement, so both views must agree exactly per asset.
type ConservationAudit struct {
	Entries  []ConservationEntry `json:"entries"`
	Balanced bool                `json:"balanced"`
}

// ExpendableMoney is the headline figure: everything held, minus investments,
// minus the emergency bucket, minus a fixed reserve kept aside.
type ExpendableMoney struct {
	TotalValue      decimal.Decimal `json:"totalValue"`
	InvestmentValue decimal.Decimal `json:"investmentValue"`
	EmergencyValue  decimal.Decimal `json:"emergencyValue"`
	Reserve         decimal.Decimal `json:"reserve"`
	Expendable      decimal.Decimal `json:"expendable"`
	UnknownPrices   int             `json:"unknownPrices"`
}
