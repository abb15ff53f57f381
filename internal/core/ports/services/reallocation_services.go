package services

import (
	"context"

	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/innajain/ledger-sub000/internal/dto"
)

// ReallocationSvcFacade defines the reallocation service surface.
type ReallocationSvcFacade interface {
	// CreateReallocation persists a bucket-to-bucket reallocation after
	// validation.
	CreateReallocation(ctx context.Context, req dto.CreateReallocationRequest) (*domain.Reallocation, error)

	// GetReallocationByID retrieves a specific reallocation.
	GetReallocationByID(ctx context.Context, reallocationID string) (*domain.Reallocation, error)

	// ListReallocations retrieves reallocations ordered by date descending.
	ListReallocations(ctx context.Context, limit int, offset int) ([]domain.Reallocation, error)

	// DeleteReallocation removes a reallocation.
	DeleteReallocation(ctx context.Context, reallocationID string) error
}
