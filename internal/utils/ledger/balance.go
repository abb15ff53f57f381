package ledger

import (
	"fmt"

	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedQuantity applies the sign convention for an entry kind.
// Credits to the entity (opening balances, income, incoming transfers, trade
// credit legs, incoming reallocations) are positive; debits are negative.
// This is used in both services and repositories to keep the convention in
// one place.
func SignedQuantity(entry domain.LedgerEntry) (decimal.Decimal, error) {
	switch entry.Kind {
	case domain.EntryOpeningBalance,
		domain.EntryIncome,
		domain.EntryTransferIn,
		domain.EntryTradeCredit,
		domain.EntryReallocationIn:
		return entry.Quantity, nil
	case domain.EntryExpense,
		domain.EntryTransferOut,
		domain.EntryTradeDebit,
		domain.EntryReallocationOut:
		return entry.Quantity.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown ledger entry kind '%s' for asset %s", entry.Kind, entry.AssetID)
	}
}

// Accumulate folds ledger entries into per-asset balances. Absent assets are
// implicitly zero; an asset that nets to exactly zero stays in the map so the
// caller can tell "no current holding" apart from "never referenced".
// Decimal addition is exact, so the fold is order independent.
func Accumulate(entries []domain.LedgerEntry) (map[string]decimal.Decimal, error) {
	balances := make(map[string]decimal.Decimal, len(entries))
	for _, entry := range entries {
		signed, err := SignedQuantity(entry)
		if err != nil {
			return nil, err
		}
		balances[entry.AssetID] = balances[entry.AssetID].Add(signed)
	}
	return balances, nil
}
