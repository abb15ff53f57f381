package services

import (
	"context"

	"github.com/innajain/ledger-sub000/internal/core/domain"
)

// ReportingSvcFacade builds the priced read models: per-entity valuations,
// list summaries and the expendable money figure. All of them tolerate any
// subset of assets having no price.
type ReportingSvcFacade interface {
	// AccountValuation prices one account's balances.
	AccountValuation(ctx context.Context, accountID string) (*domain.Valuation, error)

	// BucketValuation prices one bucket's attributed balances.
	BucketValuation(ctx context.Context, bucketID string) (*domain.Valuation, error)

	// AccountSummaries prices every account for the list view.
	AccountSummaries(ctx context.Context) ([]domain.AccountSummary, error)

	// BucketSummaries prices every bucket for the list view.
	BucketSummaries(ctx context.Context) ([]domain.BucketSummary, error)

	// ExpendableMoney computes total minus investments minus the emergency
	// bucket minus the configured reserve.
	ExpendableMoney(ctx context.Context) (*domain.ExpendableMoney, error)

	// ConservationAudit compares per-asset account balances against bucket
	// attributions and reports any drift.
	ConservationAudit(ctx context.Context) (*domain.ConservationAudit, error)
}
