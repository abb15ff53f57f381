package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/innajain/ledger-sub000/internal/apperrors"
	"github.com/innajain/ledger-sub000/internal/core/domain"
	portsrepo "github.com/innajain/ledger-sub000/internal/core/ports/repositories"
	portssvc "github.com/innajain/ledger-sub000/internal/core/ports/services"
	"github.com/innajain/ledger-sub000/internal/dto"
	"github.com/innajain/ledger-sub000/internal/utils"
	"github.com/innajain/ledger-sub000/internal/utils/ledger"
	"github.com/shopspring/decimal"
)

// accountService provides business logic for accounts and their opening
// balances.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, ledgerRepo: ledgerRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// buildOpeningBalances converts opening balance requests into domain values,
// assigning IDs and validating each allocation decomposition. The (account,
// asset) uniqueness constraint is checked here so the error is a validation
// error rather than a database one.
func buildOpeningBalances(accountID string, reqs []dto.OpeningBalanceRequest, now time.Time) ([]domain.OpeningBalance, error) {
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	seen := make(map[string]bool, len(reqs))
	openingBalances := make([]domain.OpeningBalance, len(reqs))
	for i, obReq := range reqs {
		if seen[obReq.AssetID] {
			return nil, fmt.Errorf("%w: duplicate opening balance for asset %s", apperrors.ErrValidation, obReq.AssetID)
		}
		seen[obReq.AssetID] = true

		date, err := utils.ParseDate(obReq.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}

		ob := domain.OpeningBalance{
			OpeningBalanceID: uuid.NewString(),
			AccountID:        accountID,
			AssetID:          obReq.AssetID,
			Quantity:         obReq.Quantity,
			Date:             date,
			AuditFields:      audit,
		}
		ob.Allocations = make([]domain.Allocation, len(obReq.Allocations))
		for j, aReq := range obReq.Allocations {
			ob.Allocations[j] = domain.Allocation{
				AllocationID: uuid.NewString(),
				ParentID:     ob.OpeningBalanceID,
				BucketID:     aReq.BucketID,
				Quantity:     aReq.Quantity,
				AuditFields:  audit,
			}
		}

		parentName := fmt.Sprintf("opening balance %s", ob.OpeningBalanceID)
		if err := ledger.ValidateAllocations(parentName, ob.Quantity, ob.Allocations); err != nil {
			return nil, err
		}
		openingBalances[i] = ob
	}
	return openingBalances, nil
}

// CreateAccount persists a new account with its opening balances and their
// allocations in one atomic write, validating every decomposition first.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now().UTC()
	account := domain.Account{
		AccountID: uuid.NewString(),
		Name:      req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	openingBalances, err := buildOpeningBalances(account.AccountID, req.OpeningBalances, now)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, account, openingBalances); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created", "account_id", account.AccountID, "opening_balances", len(openingBalances))
	return &account, nil
}

// GetAccountByID retrieves an account with its opening balances.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, []domain.OpeningBalance, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get account: %w", err)
	}
	openingBalances, err := s.accountRepo.FindOpeningBalancesByAccount(ctx, accountID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get opening balances: %w", err)
	}
	return account, openingBalances, nil
}

// ListAccounts retrieves all accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount patches the account and, when the request carries an opening
// balance set, replaces the whole sub-collection after validating it. The
// repository applies everything in one database transaction.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account for update: %w", err)
	}

	now := time.Now().UTC()
	if req.Name != nil {
		account.Name = *req.Name
	}
	account.LastUpdatedAt = now

	var openingBalances []domain.OpeningBalance
	if req.OpeningBalances != nil {
		openingBalances, err = buildOpeningBalances(accountID, *req.OpeningBalances, now)
		if err != nil {
			return nil, err
		}
	} else {
		openingBalances, err = s.accountRepo.FindOpeningBalancesByAccount(ctx, accountID)
		if err != nil {
			return nil, fmt.Errorf("failed to load opening balances for update: %w", err)
		}
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account, openingBalances); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

// DeleteAccount removes an account; dependent rows cascade in the store.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	s.LogInfo(ctx, "Account deleted", "account_id", accountID)
	return nil
}

// GetAccountBalances folds the account's ledger entries into per-asset
// balances.
func (s *accountService) GetAccountBalances(ctx context.Context, accountID string) (map[string]decimal.Decimal, error) {
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
	return balances, nil
}
