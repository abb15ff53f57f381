package pgsql

import (
	portsrepo "github.com/innajain/ledger-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AssetRepo:        newPgxAssetRepository(dbPool),
		AccountRepo:      newPgxAccountRepository(dbPool),
		BucketRepo:       newPgxBucketRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		ReallocationRepo: newPgxReallocationRepository(dbPool),
		LedgerRepo:       newLedgerRepository(dbPool),
	}
}
