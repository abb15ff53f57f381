package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a real-world custodial account (bank account, demat
// account, cash wallet). Every transaction leg references exactly one account.
type Account struct {
	AccountID string `json:"accountID"`
	Name      string `json:"name"`
	AuditFields
}

// OpeningBalance declares a quantity of one asset already held in an account
// as of a date, prior to any recorded transaction history. The (account,
// asset) pair is unique. The quantity is decomposed into allocations that
// attribute portions to purpose buckets; the allocations must sum exactly to
// Quantity at all times.
type OpeningBalance struct {
	OpeningBalanceID string          `json:"openingBalanceID"`
	AccountID        string          `json:"accountID"`
	AssetID          string          `json:"assetID"`
	Quantity         decimal.Decimal `json:"quantity"`
	Date             time.Time       `json:"date"`
	Allocations      []Allocation    `json:"allocations"`
	AuditFields
}

// Allocation assigns a portion of a parent quantity (an opening balance or an
// income transaction) to a purpose bucket.
type Allocation struct {
	AllocationID string          `json:"allocationID"`
	ParentID     string          `json:"parentID"` // opening balance ID or income transaction ID
	BucketID     string          `json:"bucketID"`
	Quantity     decimal.Decimal `json:"quantity"`
	AuditFields
}
