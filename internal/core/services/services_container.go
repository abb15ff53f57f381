package services

import (
	portsrepo "github.com/innajain/ledger-sub000/internal/core/ports/repositories"
	portssvc "github.com/innajain/ledger-sub000/internal/core/ports/services"
	"github.com/innajain/ledger-sub000/internal/platform/config"
)

// NewServiceContainer wires every application service with its repositories
// and the external price collaborators.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	navSource portssvc.NAVSource,
	quoteSource portssvc.QuoteSource,
	priceCache portssvc.PriceCache,
) *portssvc.ServiceContainer {
	valuation := NewValuationService(navSource, quoteSource, priceCache)

	return &portssvc.ServiceContainer{
		Asset:        NewAssetService(repos.AssetRepo),
		Account:      NewAccountService(repos.AccountRepo, repos.LedgerRepo),
		Bucket:       NewBucketService(repos.BucketRepo, repos.LedgerRepo),
		Transaction:  NewTransactionService(repos.TransactionRepo),
		Reallocation: NewReallocationService(repos.ReallocationRepo),
		Valuation:    valuation,
		Reporting: NewReportingService(
			repos.AccountRepo,
			repos.BucketRepo,
			repos.AssetRepo,
			repos.LedgerRepo,
			valuation,
			cfg.EmergencyBucketName,
			cfg.ReserveAmount,
		),
	}
}
