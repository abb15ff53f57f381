package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType discriminates the tagged union of transaction kinds.
type TransactionType string

const (
	TxnIncome       TransactionType = "INCOME"
	TxnExpense      TransactionType = "EXPENSE"
	TxnSelfTransfer TransactionType = "SELF_TRANSFER"
	TxnRefundable   TransactionType = "REFUNDABLE"
	TxnRefund       TransactionType = "REFUND"
	TxnAssetTrade   TransactionType = "ASSET_TRADE"
)

// IsTransfer reports whether t uses the shared transfer shape
// (self transfer, refundable given out, refund received back).
func (t TransactionType) IsTransfer() bool {
	return t == TxnSelfTransfer || t == TxnRefundable || t == TxnRefund
}

// Transaction is a ledger event. Exactly one of the sub-records is non-nil,
// matching Type.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Type          TransactionType `json:"type"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`

	Income   *IncomeTxn     `json:"income,omitempty"`
	Expense  *ExpenseTxn    `json:"expense,omitempty"`
	Transfer *TransferTxn   `json:"transfer,omitempty"`
	Trade    *AssetTradeTxn `json:"trade,omitempty"`

	AuditFields
}

// IncomeTxn credits an account with a quantity of one asset, split across
// purpose buckets by allocations that must sum exactly to Quantity.
type IncomeTxn struct {
	AssetID     string          `json:"assetID"`
	AccountID   string          `json:"accountID"`
	Quantity    decimal.Decimal `json:"quantity"`
	Allocations []Allocation    `json:"allocations"`
}

// ExpenseTxn debits an account, drawing the full quantity from a single
// purpose bucket.
type ExpenseTxn struct {
	AssetID   string          `json:"assetID"`
	AccountID string          `json:"accountID"`
	Quantity  decimal.Decimal `json:"quantity"`
	BucketID  string          `json:"bucketID"`
}

// TransferTxn moves a quantity of one asset between two accounts. Shared by
// self transfers, refundables and refunds; bucket attribution is unchanged.
type TransferTxn struct {
	AssetID       string          `json:"assetID"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// AssetTradeTxn exchanges a quantity of one asset for a quantity of another,
// possibly across accounts and on different value dates. Replacements
// attribute both legs to purpose buckets and must fully cover both
// quantities.
type AssetTradeTxn struct {
	DebitAssetID   string          `json:"debitAssetID"`
	DebitAccountID string          `json:"debitAccountID"`
	DebitQuantity  decimal.Decimal `json:"debitQuantity"`
	DebitDate      time.Time       `json:"debitDate"`

	CreditAssetID   string          `json:"creditAssetID"`
	CreditAccountID string          `json:"creditAccountID"`
	CreditQuantity  decimal.Decimal `json:"creditQuantity"`
	CreditDate      time.Time       `json:"creditDate"`

	Replacements []AssetReplacement `json:"replacements"`
}

// AssetReplacement attributes a slice of a trade's debit and credit
// quantities to one purpose bucket.
type AssetReplacement struct {
	ReplacementID  string          `json:"replacementID"`
	TransactionID  string          `json:"transactionID"`
	BucketID       string          `json:"bucketID"`
	DebitQuantity  decimal.Decimal `json:"debitQuantity"`
	CreditQuantity decimal.Decimal `json:"creditQuantity"`
	AuditFields
}
