package repositories

import (
	"context"

	"github.com/innajain/ledger-sub000/internal/core/domain"
)

// ReallocationReader defines read operations for reallocation data
type ReallocationReader interface {
	// FindReallocationByID retrieves a specific reallocation.
	FindReallocationByID(ctx context.Context, reallocationID string) (*domain.Reallocation, error)

	// ListReallocations retrieves reallocations ordered by date descending.
	ListReallocations(ctx context.Context, limit int, offset int) ([]domain.Reallocation, error)
}

// ReallocationWriter defines write operations for reallocation data
type ReallocationWriter interface {
	// SaveReallocation persists a new reallocation.
	SaveReallocation(ctx context.Context, reallocation domain.Reallocation) error

	// DeleteReallocation removes a reallocation.
	DeleteReallocation(ctx context.Context, reallocationID string) error
}

// ReallocationRepositoryFacade combines all reallocation-related repository interfaces
type ReallocationRepositoryFacade interface {
	ReallocationReader
	ReallocationWriter
}
