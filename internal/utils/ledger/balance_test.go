package ledger_test

import (
	"math/rand"
	"testing"

	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/innajain/ledger-sub000/internal/utils/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSignedQuantity(t *testing.T) {
	tests := []struct {
		name string
		kind domain.EntryKind
		want string
	}{
		{"opening balance credits", domain.EntryOpeningBalance, "10"},
		{"income credits", domain.EntryIncome, "10"},
		{"transfer in credits", domain.EntryTransferIn, "10"},
		{"trade credit leg credits", domain.EntryTradeCredit, "10"},
		{"reallocation in credits", domain.EntryReallocationIn, "10"},
		{"expense debits", domain.EntryExpense, "-10"},
		{"transfer out debits", domain.EntryTransferOut, "-10"},
		{"trade debit leg debits", domain.EntryTradeDebit, "-10"},
		{"reallocation out debits", domain.EntryReallocationOut, "-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ledger.SignedQuantity(domain.LedgerEntry{
				Kind:     tt.kind,
				AssetID:  "asset-1",
				Quantity: dec("10"),
			})
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestSignedQuantity_UnknownKind(t *testing.T) {
	_, err := ledger.SignedQuantity(domain.LedgerEntry{Kind: "BOGUS", AssetID: "a", Quantity: dec("1")})
	assert.Error(t, err)
}

func TestAccumulate(t *testing.T) {
	entries := []domain.LedgerEntry{
		{Kind: domain.EntryOpeningBalance, AssetID: "inr", Quantity: dec("1000")},
		{Kind: domain.EntryIncome, AssetID: "inr", Quantity: dec("500.25")},
		{Kind: domain.EntryExpense, AssetID: "inr", Quantity: dec("200.25")},
		{Kind: domain.EntryTradeDebit, AssetID: "inr", Quantity: dec("100")},
		{Kind: domain.EntryTradeCredit, AssetID: "fund-x", Quantity: dec("3.317")},
	}

	balances, err := ledger.Accumulate(entries)
	require.NoError(t, err)

	require.Len(t, balances, 2)
	assert.True(t, balances["inr"].Equal(dec("1200")))
	assert.True(t, balances["fund-x"].Equal(dec("3.317")))
}

// An account that held an asset and disposed of it entirely keeps the asset
// in the map with a zero balance; "never referenced" is absence from the map.
func TestAccumulate_ZeroNetIsPresent(t *testing.T) {
	entries := []domain.LedgerEntry{
		{Kind: domain.EntryIncome, AssetID: "inr", Quantity: dec("750.50")},
		{Kind: domain.EntryExpense, AssetID: "inr", Quantity: dec("750.50")},
	}

	balances, err := ledger.Accumulate(entries)
	require.NoError(t, err)

	got, ok := balances["inr"]
	require.True(t, ok)
	assert.True(t, got.IsZero())
	_, ok = balances["never-seen"]
	assert.False(t, ok)
}

func TestAccumulate_OrderIndependent(t *testing.T) {
	entries := []domain.LedgerEntry{
		{Kind: domain.EntryOpeningBalance, AssetID: "inr", Quantity: dec("1000.10")},
		{Kind: domain.EntryIncome, AssetID: "inr", Quantity: dec("0.000001")},
		{Kind: domain.EntryExpense, AssetID: "inr", Quantity: dec("999999.99")},
		{Kind: domain.EntryTransferIn, AssetID: "inr", Quantity: dec("42")},
		{Kind: domain.EntryTransferOut, AssetID: "inr", Quantity: dec("7.77")},
		{Kind: domain.EntryTradeCredit, AssetID: "fund-x", Quantity: dec("12.345678")},
		{Kind: domain.EntryTradeDebit, AssetID: "fund-x", Quantity: dec("1.000001")},
	}

	want, err := ledger.Accumulate(entries)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]domain.LedgerEntry, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got, err := ledger.Accumulate(shuffled)
		require.NoError(t, err)
		require.Len(t, got, len(want))
		for assetID, balance := range want {
			assert.True(t, got[assetID].Equal(balance), "asset %s: got %s want %s", assetID, got[assetID], balance)
		}
	}
}

func TestAccumulate_Idempotent(t *testing.T) {
	entries := []domain.LedgerEntry{
		{Kind: domain.EntryOpeningBalance, AssetID: "inr", Quantity: dec("123.45")},
		{Kind: domain.EntryReallocationIn, AssetID: "inr", Quantity: dec("10")},
		{Kind: domain.EntryReallocationOut, AssetID: "inr", Quantity: dec("4.55")},
	}

	first, err := ledger.Accumulate(entries)
	require.NoError(t, err)
	second, err := ledger.Accumulate(entries)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for assetID, balance := range first {
		assert.True(t, second[assetID].Equal(balance))
	}
}
