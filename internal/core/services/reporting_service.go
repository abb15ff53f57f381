package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/innajain/ledger-sub000/internal/apperrors"
	"github.com/innajain/ledger-sub000/internal/core/domain"
	portsrepo "github.com/innajain/ledger-sub000/internal/core/ports/repositories"
	portssvc "github.com/innajain/ledger-sub000/internal/core/ports/services"
	"github.com/innajain/ledger-sub000/internal/utils/ledger"
	"github.com/shopspring/decimal"
)

// reportingService builds the priced read models: per-entity valuations, the
// list summaries and the expendable money figure. All of them tolerate any
// subset of assets having no price.
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	bucketRepo  portsrepo.BucketRepositoryFacade
	assetRepo   portsrepo.AssetRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	valuation   portssvc.ValuationSvcFacade

	emergencyBucketName string
	reserve             decimal.Decimal
}

// NewReportingService creates a new reporting service. emergencyBucketName
// and reserve come from configuration and shape the expendable money figure.
func NewReportingService(
	accountRepo portsrepo.AccountRepositoryFacade,
	bucketRepo portsrepo.BucketRepositoryFacade,
	assetRepo portsrepo.AssetRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	valuation portssvc.ValuationSvcFacade,
	emergencyBucketName string,
	reserve decimal.Decimal,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo:         accountRepo,
		bucketRepo:          bucketRepo,
		assetRepo:           assetRepo,
		ledgerRepo:          ledgerRepo,
		valuation:           valuation,
		emergencyBucketName: emergencyBucketName,
		reserve:             reserve,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// valueBalanceMap joins a balance map with its asset records and prices it.
func (s *reportingService) valueBalanceMap(ctx context.Context, balances map[string]decimal.Decimal) (*domain.Valuation, error) {
	assetIDs := make([]string, 0, len(balances))
	for assetID := range balances {
		assetIDs = append(assetIDs, assetID)
	}
	assets, err := s.assetRepo.FindAssetsByIDs(ctx, assetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load assets for valuation: %w", err)
	}
	return s.valuation.ValueBalances(ctx, balances, assets)
}

// AccountValuation prices one account's balances.
func (s *reportingService) AccountValuation(ctx context.Context, accountID string) (*domain.Valuation, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	entries, err := s.ledgerRepo.FindEntriesByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account ledger entries: %w", err)
	}
	balances, err := ledger.Accumulate(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to accumulate account balances: %w", err)
	}
	return s.valueBalanceMap(ctx, balances)
}

// BucketValuation prices one bucket's attributed balances.
func (s *reportingService) BucketValuation(ctx context.Context, bucketID string) (*domain.Valuation, error) {
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
	return s.valueBalanceMap(ctx, balances)
}

// AccountSummaries prices every account for the list view.
func (s *reportingService) AccountSummaries(ctx context.Context) ([]domain.AccountSummary, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	summaries := make([]domain.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		valuation, err := s.AccountValuation(ctx, account.AccountID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, domain.AccountSummary{
			Account:       account,
			TotalValue:    valuation.TotalValue,
			UnknownPrices: valuation.UnknownPrices,
		})
	}
	return summaries, nil
}

// BucketSummaries prices every bucket for the list view.
func (s *reportingService) BucketSummaries(ctx context.Context) ([]domain.BucketSummary, error) {
	buckets, err := s.bucketRepo.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	summaries := make([]domain.BucketSummary, 0, len(buckets))
	for _, bucket := range buckets {
		valuation, err := s.BucketValuation(ctx, bucket.BucketID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, domain.BucketSummary{
			Bucket:        bucket,
			TotalValue:    valuation.TotalValue,
			UnknownPrices: valuation.UnknownPrices,
		})
	}
	return summaries, nil
}

// overallBalances folds every account's ledger entries into one balance map.
func (s *reportingService) overallBalances(ctx context.Context) (map[string]decimal.Decimal, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	entries := make([]domain.LedgerEntry, 0)
	for _, account := range accounts {
		accountEntries, err := s.ledgerRepo.FindEntriesByAccount(ctx, account.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch ledger entries for account %s: %w", account.AccountID, err)
		}
		entries = append(entries, accountEntries...)
	}
	return ledger.Accumulate(entries)
}

// ConservationAudit folds every account's entries and every bucket's entries
// into two per-asset balance maps and compares them. Reallocations and trade
// replacements move bucket attribution without touching accounts, so any
// difference means attributed value was created or destroyed somewhere.
func (s *reportingService) ConservationAudit(ctx context.Context) (*domain.ConservationAudit, error) {
	accountBalances, err := s.overallBalances(ctx)
	if err != nil {
		return nil, err
	}

	buckets, err := s.bucketRepo.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}
	bucketEntries := make([]domain.LedgerEntry, 0)
	for _, bucket := range buckets {
		entries, err := s.ledgerRepo.FindEntriesByBucket(ctx, bucket.BucketID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch ledger entries for bucket %s: %w", bucket.BucketID, err)
		}
		bucketEntries = append(bucketEntries, entries...)
	}
	bucketBalances, err := ledger.Accumulate(bucketEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to accumulate bucket balances: %w", err)
	}

	assetIDs := make(map[string]struct{}, len(accountBalances))
	for assetID := range accountBalances {
		assetIDs[assetID] = struct{}{}
	}
	for assetID := range bucketBalances {
		assetIDs[assetID] = struct{}{}
	}
	sorted := make([]string, 0, len(assetIDs))
	for assetID := range assetIDs {
		sorted = append(sorted, assetID)
	}
	sort.Strings(sorted)

	audit := &domain.ConservationAudit{
		Entries:  make([]domain.ConservationEntry, 0, len(sorted)),
		Balanced: true,
	}
	for _, assetID := range sorted {
		diff := accountBalances[assetID].Sub(bucketBalances[assetID])
		audit.Entries = append(audit.Entries, domain.ConservationEntry{
			AssetID:        assetID,
			AccountBalance: accountBalances[assetID],
			BucketBalance:  bucketBalances[assetID],
			Difference:     diff,
		})
		if !diff.IsZero() {
			audit.Balanced = false
		}
	}
	if !audit.Balanced {
		s.LogWarn(ctx, "Bucket attribution does not conserve value", "assets", len(audit.Entries))
	}
	return audit, nil
}

// ExpendableMoney computes the headline figure: the value of everything held,
// minus the value locked in investment assets, minus the emergency bucket,
// minus a fixed reserve kept aside. A missing emergency bucket contributes
// zero rather than failing the whole figure.
func (s *reportingService) ExpendableMoney(ctx context.Context) (*domain.ExpendableMoney, error) {
	balances, err := s.overallBalances(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.valueBalanceMap(ctx, balances)
	if err != nil {
		return nil, err
	}

	// Investments are the non-currency holdings: money parked in funds,
	// ETFs and other instruments is not spendable day to day.
	investment := decimal.Zero
	for _, holding := range total.Holdings {
		if holding.AssetType != domain.AssetCurrency && holding.MonetaryValue != nil {
			investment = investment.Add(*holding.MonetaryValue)
		}
	}

	emergency := decimal.Zero
	unknownPrices := total.UnknownPrices
	bucket, err := s.bucketRepo.FindBucketByName(ctx, s.emergencyBucketName)
	switch {
	case err == nil:
		bucketValuation, err := s.BucketValuation(ctx, bucket.BucketID)
		if err != nil {
			return nil, err
		}
		// Only the currency part of the emergency bucket is counted;
		// its invested part is already excluded with the investments.
		for _, holding := range bucketValuation.Holdings {
			if holding.AssetType == domain.AssetCurrency && holding.MonetaryValue != nil {
				emergency = emergency.Add(*holding.MonetaryValue)
			}
		}
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogWarn(ctx, "Emergency bucket not found, treating as zero", "bucket_name", s.emergencyBucketName)
	default:
		return nil, fmt.Errorf("failed to find emergency bucket: %w", err)
	}

	expendable := total.TotalValue.Sub(investment).Sub(emergency).Sub(s.reserve)
	return &domain.ExpendableMoney{
		TotalValue:      total.TotalValue,
		InvestmentValue: investment,
		EmergencyValue:  emergency,
		Reserve:         s.reserve,
		Expendable:      expendable,
		UnknownPrices:   unknownPrices,
	}, nil
}
