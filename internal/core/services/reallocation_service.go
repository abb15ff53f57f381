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
)

// reallocationService provides business logic for bucket-to-bucket
// reallocations.
type reallocationService struct {
	BaseService
	reallocationRepo portsrepo.ReallocationRepositoryFacade
}

// NewReallocationService creates a new reallocation service.
func NewReallocationService(reallocationRepo portsrepo.ReallocationRepositoryFacade) portssvc.ReallocationSvcFacade {
	return &reallocationService{reallocationRepo: reallocationRepo}
}

var _ portssvc.ReallocationSvcFacade = (*reallocationService)(nil)

// CreateReallocation moves bucket attribution of an asset quantity from one
// bucket to another. Account balances are untouched; only the two bucket
// totals change, by equal and opposite amounts.
func (s *reallocationService) CreateReallocation(ctx context.Context, req dto.CreateReallocationRequest) (*domain.Reallocation, error) {
	date, err := parseDateField(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reallocation := domain.Reallocation{
		ReallocationID: uuid.NewString(),
		FromBucketID:   req.FromBucketID,
		ToBucketID:     req.ToBucketID,
		AssetID:        req.AssetID,
		Quantity:       req.Quantity,
		Date:           date,
		AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := ledger.ValidateReallocation(reallocation); err != nil {
		return nil, err
	}

	if err := s.reallocationRepo.SaveReallocation(ctx, reallocation); err != nil {
		return nil, fmt.Errorf("failed to create reallocation: %w", err)
	}

	s.LogInfo(ctx, "Reallocation recorded", "reallocation_id", reallocation.ReallocationID,
		"from_bucket", req.FromBucketID, "to_bucket", req.ToBucketID)
	return &reallocation, nil
}

// GetReallocationByID retrieves a specific reallocation.
func (s *reallocationService) GetReallocationByID(ctx context.Context, reallocationID string) (*domain.Reallocation, error) {
	reallocation, err := s.reallocationRepo.FindReallocationByID(ctx, reallocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reallocation: %w", err)
	}
	return reallocation, nil
}

// ListReallocations retrieves reallocations ordered by date descending.
func (s *reallocationService) ListReallocations(ctx context.Context, limit int, offset int) ([]domain.Reallocation, error) {
	reallocations, err := s.reallocationRepo.ListReallocations(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reallocations: %w", err)
	}
	return reallocations, nil
}

// DeleteReallocation removes a reallocation.
func (s *reallocationService) DeleteReallocation(ctx context.Context, reallocationID string) error {
	if err := s.reallocationRepo.DeleteReallocation(ctx, reallocationID); err != nil {
		return fmt.Errorf("failed to delete reallocation: %w", err)
	}
	s.LogInfo(ctx, "Reallocation deleted", "reallocation_id", reallocationID)
	return nil
}
