package domain

import "github.com/shopspring/decimal"

// EntryKind identifies how a ledger entry affects the balance of the entity
// it was fetched for.
type EntryKind string

const (
	EntryOpeningBalance  EntryKind = "OPENING_BALANCE"
	EntryIncome          EntryKind = "INCOME"
	EntryExpense         EntryKind = "EXPENSE"
	EntryTransferOut     EntryKind = "TRANSFER_OUT"
	EntryTransferIn      EntryKind = "TRANSFER_IN"
	EntryTradeDebit      EntryKind = "TRADE_DEBIT"
	EntryTradeCredit     EntryKind = "TRADE_CREDIT"
	EntryReallocationOut EntryKind = "REALLOCATION_OUT"
	EntryReallocationIn  EntryKind = "REALLOCATION_IN"
)

// LedgerEntry is the flat projection of any ledger row as seen from one
// entity (an account or a purpose bucket): which asset it touches, by how
// much, and in which direction. Quantity is always the unsigned magnitude;
// the sign is derived from Kind.
type LedgerEntry struct {
	Kind     EntryKind
	AssetID  string
	Quantity decimal.Decimal
}
