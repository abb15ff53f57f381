package repositories

import (
	"context"

	"github.com/innajain/ledger-sub000/internal/core/domain"
)

// BucketReader defines read operations for purpose bucket data
type BucketReader interface {
	// FindBucketByID retrieves a specific bucket by its unique identifier.
	FindBucketByID(ctx context.Context, bucketID string) (*domain.PurposeBucket, error)

	// FindBucketByName retrieves a bucket by its exact name.
	FindBucketByName(ctx context.Context, name string) (*domain.PurposeBucket, error)

	// ListBuckets retrieves all purpose buckets.
	ListBuckets(ctx context.Context) ([]domain.PurposeBucket, error)
}

// BucketWriter defines write operations for purpose bucket data
type BucketWriter interface {
	// SaveBucket persists a new bucket.
	SaveBucket(ctx context.Context, bucket domain.PurposeBucket) error

	// UpdateBucket updates an existing bucket's details.
	UpdateBucket(ctx context.Context, bucket domain.PurposeBucket) error

	// DeleteBucket removes a bucket; the store cascades to dependent rows.
	DeleteBucket(ctx context.Context, bucketID string) error
}

// BucketRepositoryFacade combines all bucket-related repository interfaces
type BucketRepositoryFacade interface {
	BucketReader
	BucketWriter
}
