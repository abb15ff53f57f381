package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurposeBucket is a non-custodial logical envelope used to earmark money or
// assets for an intended use, independent of which account physically holds
// them. Bucket balances are always derived, never stored.
type PurposeBucket struct {
	BucketID string `json:"bucketID"`
	Name     string `json:"name"`
	AuditFields
}

// Reallocation moves notional bucket attribution of an asset quantity from
// one bucket to another. No real account movement happens.
type Reallocation struct {
	ReallocationID string          `json:"reallocationID"`
	FromBucketID   string          `json:"fromBucketID"`
	ToBucketID     string          `json:"toBucketID"`
	AssetID        string          `json:"assetID"`
	Quantity       decimal.Decimal `json:"quantity"`
	Date           time.Time       `json:"date"`
	AuditFields
}
