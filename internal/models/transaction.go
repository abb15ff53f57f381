package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType discriminates the transaction kind.
type TransactionType string

// Transaction is the common row of the tagged union. Exactly one sub-record
// table has a row for each transaction, matched by Type.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	Type          TransactionType `db:"type"`
	Date          time.Time       `db:"date"`
	Description   string          `db:"description"`
	AuditFields
}

// IncomeTxn is the income sub-record row.
type IncomeTxn struct {
	TransactionID string          `db:"transaction_id"`
	AssetID       string          `db:"asset_id"`
	AccountID     string          `db:"account_id"`
	Quantity      decimal.Decimal `db:"quantity"`
}

// ExpenseTxn is the expense sub-record row.
type ExpenseTxn struct {
	TransactionID string          `db:"transaction_id"`
	AssetID       string          `db:"asset_id"`
	AccountID     string          `db:"account_id"`
	Quantity      decimal.Decimal `db:"quantity"`
	BucketID      string          `db:"bucket_id"`
}

// TransferTxn is the shared sub-record row for self transfers, refundables
// and refunds.
type TransferTxn struct {
	TransactionID string          `db:"transaction_id"`
	AssetID       string          `db:"asset_id"`
	FromAccountID string          `db:"from_account_id"`
	ToAccountID   string          `db:"to_account_id"`
	Quantity      decimal.Decimal `db:"quantity"`
}

// TradeTxn is the asset trade sub-record row.
type TradeTxn struct {
	TransactionID   string          `db:"transaction_id"`
	DebitAssetID    string          `db:"debit_asset_id"`
	DebitAccountID  string          `db:"debit_account_id"`
	DebitQuantity   decimal.Decimal `db:"debit_quantity"`
	DebitDate       time.Time       `db:"debit_date"`
	CreditAssetID   string          `db:"credit_asset_id"`
	CreditAccountID string          `db:"credit_account_id"`
	CreditQuantity  decimal.Decimal `db:"credit_quantity"`
	CreditDate      time.Time       `db:"credit_date"`
}

// AssetReplacement attributes a slice of a trade's two legs to one bucket.
type AssetReplacement struct {
	ReplacementID  string          `db:"replacement_id"`
	TransactionID  string          `db:"transaction_id"`
	BucketID       string          `db:"bucket_id"`
	DebitQuantity  decimal.Decimal `db:"debit_quantity"`
	CreditQuantity decimal.Decimal `db:"credit_quantity"`
	AuditFields
}
