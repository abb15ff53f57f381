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
)

// transactionService provides business logic for all transaction kinds. Every
// mutation validates its decomposition before touching the repository, so a
// rejected request leaves the store untouched.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// buildAllocations converts allocation requests into domain values owned by
// the given parent.
func buildAllocations(parentID string, reqs []dto.AllocationRequest, now time.Time) []domain.Allocation {
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
	allocations := make([]domain.Allocation, len(reqs))
	for i, r := range reqs {
		allocations[i] = domain.Allocation{
			AllocationID: uuid.NewString(),
			ParentID:     parentID,
			BucketID:     r.BucketID,
			Quantity:     r.Quantity,
			AuditFields:  audit,
		}
	}
	return allocations
}

// buildReplacements converts replacement requests into domain values owned by
// the given transaction.
func buildReplacements(transactionID string, reqs []dto.ReplacementRequest, now time.Time) []domain.AssetReplacement {
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
	replacements := make([]domain.AssetReplacement, len(reqs))
	for i, r := range reqs {
		replacements[i] = domain.AssetReplacement{
			ReplacementID:  uuid.NewString(),
			TransactionID:  transactionID,
			BucketID:       r.BucketID,
			DebitQuantity:  r.DebitQuantity,
			CreditQuantity: r.CreditQuantity,
			AuditFields:    audit,
		}
	}
	return replacements
}

func parseDateField(value string) (time.Time, error) {
	date, err := utils.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return date, nil
}

// CreateIncome records money coming into an account, split across purpose
// buckets. The split must sum exactly to the income quantity.
func (s *transactionService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest) (*domain.Transaction, error) {
	date, err := parseDateField(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.TxnIncome,
		Date:          date,
		Description:   req.Description,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	txn.Income = &domain.IncomeTxn{
		AssetID:     req.AssetID,
		AccountID:   req.AccountID,
		Quantity:    req.Quantity,
		Allocations: buildAllocations(txn.TransactionID, req.Allocations, now),
	}

	parentName := fmt.Sprintf("income %s", txn.TransactionID)
	if err := ledger.ValidateAllocations(parentName, txn.Income.Quantity, txn.Income.Allocations); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create income transaction: %w", err)
	}

	s.LogInfo(ctx, "Income recorded", "transaction_id", txn.TransactionID, "quantity", req.Quantity.String())
	return &txn, nil
}

// CreateExpense records money leaving an account, drawn from one bucket.
func (s *transactionService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Transaction, error) {
	date, err := parseDateField(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.TxnExpense,
		Date:          date,
		Description:   req.Description,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		Expense: &domain.ExpenseTxn{
			AssetID:   req.AssetID,
			AccountID: req.AccountID,
			Quantity:  req.Quantity,
			BucketID:  req.BucketID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create expense transaction: %w", err)
	}

	s.LogInfo(ctx, "Expense recorded", "transaction_id", txn.TransactionID, "quantity", req.Quantity.String())
	return &txn, nil
}

// CreateTransfer records an account-to-account movement. The request type
// selects the flavor: plain self transfer, refundable given out, or refund
// received back. Bucket attribution is untouched either way.
func (s *transactionService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (*domain.Transaction, error) {
	if !req.Type.IsTransfer() {
		return nil, fmt.Errorf("%w: %s is not a transfer type", apperrors.ErrValidation, req.Type)
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("%w: transfer source and destination accounts must differ", apperrors.ErrValidation)
	}

	date, err := parseDateField(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          req.Type,
		Date:          date,
		Description:   req.Description,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		Transfer: &domain.TransferTxn{
			AssetID:       req.AssetID,
			FromAccountID: req.FromAccountID,
			ToAccountID:   req.ToAccountID,
			Quantity:      req.Quantity,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transfer transaction: %w", err)
	}

	s.LogInfo(ctx, "Transfer recorded", "transaction_id", txn.TransactionID, "type", string(req.Type))
	return &txn, nil
}

// CreateTrade records an exchange of one asset for another. Replacements must
// cover the debit and credit quantities exactly. The transaction date is the
// debit leg's date.
func (s *transactionService) CreateTrade(ctx context.Context, req dto.CreateTradeRequest) (*domain.Transaction, error) {
	debitDate, err := parseDateField(req.DebitDate)
	if err != nil {
		return nil, err
	}
	creditDate, err := parseDateField(req.CreditDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.TxnAssetTrade,
		Date:          debitDate,
		Description:   req.Description,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	txn.Trade = &domain.AssetTradeTxn{
		DebitAssetID:    req.DebitAssetID,
		DebitAccountID:  req.DebitAccountID,
		DebitQuantity:   req.DebitQuantity,
		DebitDate:       debitDate,
		CreditAssetID:   req.CreditAssetID,
		CreditAccountID: req.CreditAccountID,
		CreditQuantity:  req.CreditQuantity,
		CreditDate:      creditDate,
		Replacements:    buildReplacements(txn.TransactionID, req.Replacements, now),
	}

	parentName := fmt.Sprintf("trade %s", txn.TransactionID)
	if err := ledger.ValidateReplacements(parentName, txn.Trade.DebitQuantity, txn.Trade.CreditQuantity, txn.Trade.Replacements); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create trade transaction: %w", err)
	}

	s.LogInfo(ctx, "Trade recorded", "transaction_id", txn.TransactionID)
	return &txn, nil
}

// findTransactionOfType loads a transaction and checks that its kind matches
// the mutation being applied.
func (s *transactionService) findTransactionOfType(ctx context.Context, transactionID string, want func(domain.TransactionType) bool, label string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction for update: %w", err)
	}
	if !want(txn.Type) {
		return nil, fmt.Errorf("%w: transaction %s is %s, not %s", apperrors.ErrValidation, transactionID, txn.Type, label)
	}
	return txn, nil
}

// UpdateIncome patches an income transaction. When the quantity or the
// allocation set changes, the post-mutation pair is re-validated before the
// write.
func (s *transactionService) UpdateIncome(ctx context.Context, transactionID string, req dto.UpdateIncomeRequest) (*domain.Transaction, error) {
	txn, err := s.findTransactionOfType(ctx, transactionID, func(t domain.TransactionType) bool { return t == domain.TxnIncome }, "an income")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if req.Date != nil {
		date, err := parseDateField(*req.Date)
		if err != nil {
			return nil, err
		}
		txn.Date = date
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Quantity != nil {
		txn.Income.Quantity = *req.Quantity
	}
	if req.Allocations != nil {
		txn.Income.Allocations = buildAllocations(transactionID, *req.Allocations, now)
	}
	txn.LastUpdatedAt = now

	parentName := fmt.Sprintf("income %s", transactionID)
	if err := ledger.ValidateAllocations(parentName, txn.Income.Quantity, txn.Income.Allocations); err != nil {
		return nil, err
	}

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update income transaction: %w", err)
	}
	return txn, nil
}

// UpdateExpense patches an expense transaction.
func (s *transactionService) UpdateExpense(ctx context.Context, transactionID string, req dto.UpdateExpenseRequest) (*domain.Transaction, error) {
	txn, err := s.findTransactionOfType(ctx, transactionID, func(t domain.TransactionType) bool { return t == domain.TxnExpense }, "an expense")
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := parseDateField(*req.Date)
		if err != nil {
			return nil, err
		}
		txn.Date = date
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Quantity != nil {
		if req.Quantity.IsNegative() || req.Quantity.IsZero() {
			return nil, fmt.Errorf("%w: expense quantity must be positive", apperrors.ErrValidation)
		}
		txn.Expense.Quantity = *req.Quantity
	}
	if req.BucketID != nil {
		txn.Expense.BucketID = *req.BucketID
	}
	txn.LastUpdatedAt = time.Now().UTC()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update expense transaction: %w", err)
	}
	return txn, nil
}

// UpdateTransfer patches a transfer transaction of any flavor.
func (s *transactionService) UpdateTransfer(ctx context.Context, transactionID string, req dto.UpdateTransferRequest) (*domain.Transaction, error) {
	txn, err := s.findTransactionOfType(ctx, transactionID, domain.TransactionType.IsTransfer, "a transfer")
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := parseDateField(*req.Date)
		if err != nil {
			return nil, err
		}
		txn.Date = date
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Quantity != nil {
		if req.Quantity.IsNegative() || req.Quantity.IsZero() {
			return nil, fmt.Errorf("%w: transfer quantity must be positive", apperrors.ErrValidation)
		}
		txn.Transfer.Quantity = *req.Quantity
	}
	txn.LastUpdatedAt = time.Now().UTC()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transfer transaction: %w", err)
	}
	return txn, nil
}

// UpdateTrade patches a trade transaction. When either quantity or the
// replacement set changes, the post-mutation coverage is re-validated before
// the write.
func (s *transactionService) UpdateTrade(ctx context.Context, transactionID string, req dto.UpdateTradeRequest) (*domain.Transaction, error) {
	txn, err := s.findTransactionOfType(ctx, transactionID, func(t domain.TransactionType) bool { return t == domain.TxnAssetTrade }, "a trade")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.DebitQuantity != nil {
		txn.Trade.DebitQuantity = *req.DebitQuantity
	}
	if req.DebitDate != nil {
		date, err := parseDateField(*req.DebitDate)
		if err != nil {
			return nil, err
		}
		txn.Trade.DebitDate = date
		txn.Date = date
	}
	if req.CreditQuantity != nil {
		txn.Trade.CreditQuantity = *req.CreditQuantity
	}
	if req.CreditDate != nil {
		date, err := parseDateField(*req.CreditDate)
		if err != nil {
			return nil, err
		}
		txn.Trade.CreditDate = date
	}
	if req.Replacements != nil {
		txn.Trade.Replacements = buildReplacements(transactionID, *req.Replacements, now)
	}
	txn.LastUpdatedAt = now

	parentName := fmt.Sprintf("trade %s", transactionID)
	if err := ledger.ValidateReplacements(parentName, txn.Trade.DebitQuantity, txn.Trade.CreditQuantity, txn.Trade.Replacements); err != nil {
		return nil, err
	}

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update trade transaction: %w", err)
	}
	return txn, nil
}

// DeleteTransaction removes a transaction of any kind along with its
// decomposition entries.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", "transaction_id", transactionID)
	return nil
}

// GetTransactionByID retrieves a transaction with its sub-record.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// ListTransactions retrieves transactions ordered by date descending.
func (s *transactionService) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}
