package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a custodial account row.
type Account struct {
	AccountID string `db:"account_id"`
	Name      string `db:"name"`
	AuditFields
}

// OpeningBalance represents a pre-history holding of one asset in an account.
// The (account_id, asset_id) pair is unique.
type OpeningBalance struct {
	OpeningBalanceID string          `db:"opening_balance_id"`
	AccountID        string          `db:"account_id"`
	AssetID          string          `db:"asset_id"`
	Quantity         decimal.Decimal `db:"quantity"`
	Date             time.Time       `db:"date"`
	AuditFields
}

// Allocation attributes a portion of a parent quantity to a purpose bucket.
// parent_id references either an opening balance or an income transaction;
// the repositories delete allocations alongside their parent.
type Allocation struct {
	AllocationID string          `db:"allocation_id"`
	ParentID     string          `db:"parent_id"`
	BucketID     string          `db:"bucket_id"`
	Quantity     decimal.Decimal `db:"quantity"`
	AuditFields
}
