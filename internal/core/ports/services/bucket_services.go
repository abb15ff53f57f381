package services

import (
	"context"

	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/innajain/ledger-sub000/internal/dto"
	"github.com/shopspring/decimal"
)

// BucketSvcFacade defines the purpose bucket service surface.
type BucketSvcFacade interface {
	// CreateBucket persists a new purpose bucket.
	CreateBucket(ctx context.Context, req dto.CreateBucketRequest) (*domain.PurposeBucket, error)

	// GetBucketByID retrieves a specific bucket.
	GetBucketByID(ctx context.Context, bucketID string) (*domain.PurposeBucket, error)

	// ListBuckets retrieves all buckets.
	ListBuckets(ctx context.Context) ([]domain.PurposeBucket, error)

	// UpdateBucket updates an existing bucket's details.
	UpdateBucket(ctx context.Context, bucketID string, req dto.UpdateBucketRequest) (*domain.PurposeBucket, error)

	// DeleteBucket removes a bucket.
	DeleteBucket(ctx context.Context, bucketID string) error

	// GetBucketBalances folds the bucket's attributed ledger entries into
	// per-asset balances.
	GetBucketBalances(ctx context.Context, bucketID string) (map[string]decimal.Decimal, error)
}
