package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/innajain/ledger-sub000/internal/core/domain"
	portsrepo "github.com/innajain/ledger-sub000/internal/core/ports/repositories"
	portssvc "github.com/innajain/ledger-sub000/internal/core/ports/services"
	"github.com/innajain/ledger-sub000/internal/dto"
	"github.com/innajain/ledger-sub000/internal/utils/ledger"
	"github.com/shopspring/decimal"
)

// bucketService provides business logic for purpose buckets.
type bucketService struct {
	BaseService
	bucketRepo portsrepo.BucketRepositoryFacade
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewBucketService creates a new bucket service.
func NewBucketService(bucketRepo portsrepo.BucketRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.BucketSvcFacade {
	return &bucketService{bucketRepo: bucketRepo, ledgerRepo: ledgerRepo}
}

var _ portssvc.BucketSvcFacade = (*bucketService)(nil)

// CreateBucket persists a new purpose bucket.
func (s *bucketService) CreateBucket(ctx context.Context, req dto.CreateBucketRequest) (*domain.PurposeBucket, error) {
	now := time.Now().UTC()
	bucket := domain.PurposeBucket{
		BucketID: uuid.NewString(),
		Name:     req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.bucketRepo.SaveBucket(ctx, bucket); err != nil {
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	s.LogInfo(ctx, "Bucket created", "bucket_id", bucket.BucketID)
	return &bucket, nil
}

// GetBucketByID retrieves a specific bucket.
func (s *bucketService) GetBucketByID(ctx context.Context, bucketID string) (*domain.PurposeBucket, error) {
	bucket, err := s.bucketRepo.FindBucketByID(ctx, bucketID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket: %w", err)
	}
	return bucket, nil
}

// ListBuckets retrieves all buckets.
func (s *bucketService) ListBuckets(ctx context.Context) ([]domain.PurposeBucket, error) {
	buckets, err := s.bucketRepo.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}
	return buckets, nil
}

// UpdateBucket updates an existing bucket's details.
func (s *bucketService) UpdateBucket(ctx context.Context, bucketID string, req dto.UpdateBucketRequest) (*domain.PurposeBucket, error) {
	bucket, err := s.bucketRepo.FindBucketByID(ctx, bucketID)
	if err != nil {
		return nil, fmt.Errorf("failed to find bucket for update: %w", err)
	}

	if req.Name != nil {
		bucket.Name = *req.Name
	}
	bucket.LastUpdatedAt = time.Now().UTC()

	if err := s.bucketRepo.UpdateBucket(ctx, *bucket); err != nil {
		return nil, fmt.Errorf("failed to update bucket: %w", err)
	}
	return bucket, nil
}

// DeleteBucket removes a bucket; dependent rows cascade in the store.
func (s *bucketService) DeleteBucket(ctx context.Context, bucketID string) error {
	if err := s.bucketRepo.DeleteBucket(ctx, bucketID); err != nil {
		return fmt.Errorf("failed to delete bucket: %w", err)
	}
	s.LogInfo(ctx, "Bucket deleted", "bucket_id", bucketID)
	return nil
}

// GetBucketBalances folds the bucket's attributed ledger entries into
// per-asset balances.
func (s *bucketService) GetBucketBalances(ctx context.Context, bucketID string) (map[string]decimal.Decimal, error) {
	if _, err := s.bucketRepo.FindBucketByID(ctx, bucketID); err != nil {
		return nil, fmt.Errorf("failed to find bucket: %w", err)
	}

	entries, err := s.ledgerRepo.FindEntriesByBucket(ctx, bucketID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bucket ledger entries: %w", err)
	}

	balances, err := ledger.Accumulate(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to accumulate bucket balances: %w", err)
	}
	return balances, nil
}
