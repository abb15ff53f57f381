package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurposeBucket represents a named earmarking of money. Names are unique.
type PurposeBucket struct {
	BucketID string `db:"bucket_id"`
	Name     string `db:"name"`
	AuditFields
}

// Reallocation represents a movement of bucket attribution of one asset
// between two buckets.
type Reallocation struct {
	ReallocationID string          `db:"reallocation_id"`
	FromBucketID   string          `db:"from_bucket_id"`
	ToBucketID     string          `db:"to_bucket_id"`
	AssetID        string          `db:"asset_id"`
	Quantity       decimal.Decimal `db:"quantity"`
	Date           time.Time       `db:"date"`
	AuditFields
}
