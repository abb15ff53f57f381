package dto

import (
	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/innajain/ledger-sub000/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest records money coming into an account, split across
// purpose buckets.
type CreateIncomeRequest struct {
	Date        string              `json:"date" binding:"required"` // DD-MM-YYYY
	Description string              `json:"description"`
	AssetID     string              `json:"assetID" binding:"required"`
	AccountID   string              `json:"accountID" binding:"required"`
	Quantity    decimal.Decimal     `json:"quantity" binding:"required,dgt0"`
	Allocations []AllocationRequest `json:"allocations" binding:"required,min=1,dive"`
}

// CreateExpenseRequest records money leaving an account from one bucket.
type CreateExpenseRequest struct {
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description"`
	AssetID     string          `json:"assetID" binding:"required"`
	AccountID   string          `json:"accountID" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required,dgt0"`
	BucketID    string          `json:"bucketID" binding:"required"`
}

// CreateTransferRequest records an account-to-account movement. Type selects
// the flavor: a plain self transfer, a refundable given out, or a refund
// received back.
type CreateTransferRequest struct {
	Type          domain.TransactionType `json:"type" binding:"required,oneof=SELF_TRANSFER REFUNDABLE REFUND"`
	Date          string                 `json:"date" binding:"required"`
	Description   string                 `json:"description"`
	AssetID       string                 `json:"assetID" binding:"required"`
	FromAccountID string                 `json:"fromAccountID" binding:"required"`
	ToAccountID   string                 `json:"toAccountID" binding:"required"`
	Quantity      decimal.Decimal        `json:"quantity" binding:"required,dgt0"`
}

// ReplacementRequest attributes a slice of a trade to one bucket.
type ReplacementRequest struct {
	BucketID       string          `json:"bucketID" binding:"required"`
	DebitQuantity  decimal.Decimal `json:"debitQuantity"`
	CreditQuantity decimal.Decimal `json:"creditQuantity"`
}

// CreateTradeRequest exchanges one asset for another.
type CreateTradeRequest struct {
	Description string `json:"description"`

	DebitAssetID   string          `json:"debitAssetID" binding:"required"`
	DebitAccountID string          `json:"debitAccountID" binding:"required"`
	DebitQuantity  decimal.Decimal `json:"debitQuantity" binding:"required,dgt0"`
	DebitDate      string          `json:"debitDate" binding:"required"`

	CreditAssetID   string          `json:"creditAssetID" binding:"required"`
	CreditAccountID string          `json:"creditAccountID" binding:"required"`
	CreditQuantity  decimal.Decimal `json:"creditQuantity" binding:"required,dgt0"`
	CreditDate      string          `json:"creditDate" binding:"required"`

	Replacements []ReplacementRequest `json:"replacements" binding:"required,min=1,dive"`
}

// UpdateIncomeRequest replaces an income transaction's mutable fields. The
// allocation slice is the full post-mutation set.
type UpdateIncomeRequest struct {
	Date        *string              `json:"date"`
	Description *string              `json:"description"`
	Quantity    *decimal.Decimal     `json:"quantity"`
	Allocations *[]AllocationRequest `json:"allocations" binding:"omitempty,min=1,dive"`
}

// UpdateExpenseRequest replaces an expense transaction's mutable fields.
type UpdateExpenseRequest struct {
	Date        *string          `json:"date"`
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	BucketID    *string          `json:"bucketID"`
}

// UpdateTransferRequest replaces a transfer transaction's mutable fields.
type UpdateTransferRequest struct {
	Date        *string          `json:"date"`
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
}

// UpdateTradeRequest replaces a trade's mutable fields. The replacement
// slice is the full post-mutation set.
type UpdateTradeRequest struct {
	Description    *string               `json:"description"`
	DebitQuantity  *decimal.Decimal      `json:"debitQuantity"`
	DebitDate      *string               `json:"debitDate"`
	CreditQuantity *decimal.Decimal      `json:"creditQuantity"`
	CreditDate     *string               `json:"creditDate"`
	Replacements   *[]ReplacementRequest `json:"replacements" binding:"omitempty,min=1,dive"`
}

// ReplacementResponse mirrors domain.AssetReplacement.
type ReplacementResponse struct {
	ReplacementID  string          `json:"replacementID"`
	BucketID       string          `json:"bucketID"`
	DebitQuantity  decimal.Decimal `json:"debitQuantity"`
	CreditQuantity decimal.Decimal `json:"creditQuantity"`
}

// TransactionResponse is the union view of any transaction kind.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Type          domain.TransactionType `json:"type"`
	Date          string                 `json:"date"`
	Description   string                 `json:"description"`

	Income   *IncomeDetail   `json:"income,omitempty"`
	Expense  *ExpenseDetail  `json:"expense,omitempty"`
	Transfer *TransferDetail `json:"transfer,omitempty"`
	Trade    *TradeDetail    `json:"trade,omitempty"`
}

// IncomeDetail is the income sub-record of a TransactionResponse.
type IncomeDetail struct {
	AssetID     string               `json:"assetID"`
	AccountID   string               `json:"accountID"`
	Quantity    decimal.Decimal      `json:"quantity"`
	Allocations []AllocationResponse `json:"allocations"`
}

// ExpenseDetail is the expense sub-record of a TransactionResponse.
type ExpenseDetail struct {
	AssetID   string          `json:"assetID"`
	AccountID string          `json:"accountID"`
	Quantity  decimal.Decimal `json:"quantity"`
	BucketID  string          `json:"bucketID"`
}

// TransferDetail is the transfer sub-record of a TransactionResponse.
type TransferDetail struct {
	AssetID       string          `json:"assetID"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// TradeDetail is the asset trade sub-record of a TransactionResponse.
type TradeDetail struct {
	DebitAssetID    string                `json:"debitAssetID"`
	DebitAccountID  string                `json:"debitAccountID"`
	DebitQuantity   decimal.Decimal       `json:"debitQuantity"`
	DebitDate       string                `json:"debitDate"`
	CreditAssetID   string                `json:"creditAssetID"`
	CreditAccountID string                `json:"creditAccountID"`
	CreditQuantity  decimal.Decimal       `json:"creditQuantity"`
	CreditDate      string                `json:"creditDate"`
	Replacements    []ReplacementResponse `json:"replacements"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	res := TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          txn.Type,
		Date:          utils.FormatDate(txn.Date),
		Description:   txn.Description,
	}

	switch {
	case txn.Income != nil:
		allocs := make([]AllocationResponse, len(txn.Income.Allocations))
		for i, a := range txn.Income.Allocations {
			allocs[i] = ToAllocationResponse(a)
		}
		res.Income = &IncomeDetail{
			AssetID:     txn.Income.AssetID,
			AccountID:   txn.Income.AccountID,
			Quantity:    txn.Income.Quantity,
			Allocations: allocs,
		}
	case txn.Expense != nil:
		res.Expense = &ExpenseDetail{
			AssetID:   txn.Expense.AssetID,
			AccountID: txn.Expense.AccountID,
			Quantity:  txn.Expense.Quantity,
			BucketID:  txn.Expense.BucketID,
		}
	case txn.Transfer != nil:
		res.Transfer = &TransferDetail{
			AssetID:       txn.Transfer.AssetID,
			FromAccountID: txn.Transfer.FromAccountID,
			ToAccountID:   txn.Transfer.ToAccountID,
			Quantity:      txn.Transfer.Quantity,
		}
	case txn.Trade != nil:
		reps := make([]ReplacementResponse, len(txn.Trade.Replacements))
		for i, r := range txn.Trade.Replacements {
			reps[i] = ReplacementResponse{
				ReplacementID:  r.ReplacementID,
				BucketID:       r.BucketID,
				DebitQuantity:  r.DebitQuantity,
				CreditQuantity: r.CreditQuantity,
			}
		}
		res.Trade = &TradeDetail{
			DebitAssetID:    txn.Trade.DebitAssetID,
			DebitAccountID:  txn.Trade.DebitAccountID,
			DebitQuantity:   txn.Trade.DebitQuantity,
			DebitDate:       utils.FormatDate(txn.Trade.DebitDate),
			CreditAssetID:   txn.Trade.CreditAssetID,
			CreditAccountID: txn.Trade.CreditAccountID,
			CreditQuantity:  txn.Trade.CreditQuantity,
			CreditDate:      utils.FormatDate(txn.Trade.CreditDate),
			Replacements:    reps,
		}
	}

	return res
}

// ToListTransactionResponse converts domain transactions to DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
