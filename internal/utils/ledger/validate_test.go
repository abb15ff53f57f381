package ledger_test

import (
	"testing"

	"github.com/innajain/ledger-sub000/internal/apperrors"
	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/innajain/ledger-sub000/internal/utils/ledger"
	"github.com/stretchr/testify/assert"
)

func alloc(bucketID, quantity string) domain.Allocation {
	return domain.Allocation{BucketID: bucketID, Quantity: dec(quantity)}
}

func TestValidateAllocations(t *testing.T) {
	tests := []struct {
		name        string
		parent      string
		allocations []domain.Allocation
		wantErr     bool
	}{
		{
			name:        "exact split accepted",
			parent:      "500",
			allocations: []domain.Allocation{alloc("b1", "300"), alloc("b2", "200")},
		},
		{
			name:        "single full allocation accepted",
			parent:      "1000",
			allocations: []domain.Allocation{alloc("b1", "1000")},
		},
		{
			name:        "short split rejected",
			parent:      "500",
			allocations: []domain.Allocation{alloc("b1", "300"), alloc("b2", "150")},
			wantErr:     true,
		},
		{
			name:        "over split rejected",
			parent:      "500",
			allocations: []domain.Allocation{alloc("b1", "300"), alloc("b2", "200.01")},
			wantErr:     true,
		},
		{
			name:        "empty allocations rejected",
			parent:      "500",
			allocations: nil,
			wantErr:     true,
		},
		{
			name:        "non positive allocation rejected",
			parent:      "500",
			allocations: []domain.Allocation{alloc("b1", "500"), alloc("b2", "0")},
			wantErr:     true,
		},
		{
			name:        "fractional exactness is exact",
			parent:      "0.3",
			allocations: []domain.Allocation{alloc("b1", "0.1"), alloc("b2", "0.2")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ledger.ValidateAllocations("income txn-1", dec(tt.parent), tt.allocations)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAllocations_NamesParent(t *testing.T) {
	err := ledger.ValidateAllocations("opening balance ob-42", dec("10"), []domain.Allocation{alloc("b1", "9")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "ob-42")
}

func rep(bucketID, debit, credit string) domain.AssetReplacement {
	return domain.AssetReplacement{BucketID: bucketID, DebitQuantity: dec(debit), CreditQuantity: dec(credit)}
}

func TestValidateReplacements(t *testing.T) {
	tests := []struct {
		name         string
		debit        string
		credit       string
		replacements []domain.AssetReplacement
		wantErr      bool
	}{
		{
			name:   "both sides fully covered across two buckets",
			debit:  "10",
			credit: "200",
			replacements: []domain.AssetReplacement{
				rep("b1", "6", "120"),
				rep("b2", "4", "80"),
			},
		},
		{
			name:   "debit side short",
			debit:  "10",
			credit: "200",
			replacements: []domain.AssetReplacement{
				rep("b1", "6", "120"),
				rep("b2", "3", "80"),
			},
			wantErr: true,
		},
		{
			name:   "credit side over",
			debit:  "10",
			credit: "200",
			replacements: []domain.AssetReplacement{
				rep("b1", "6", "120"),
				rep("b2", "4", "81"),
			},
			wantErr: true,
		},
		{
			name:   "one sided replacement allowed when other side zero",
			debit:  "10",
			credit: "200",
			replacements: []domain.AssetReplacement{
				rep("b1", "10", "0"),
				rep("b2", "0", "200"),
			},
		},
		{
			name:         "empty replacements rejected",
			debit:        "10",
			credit:       "200",
			replacements: nil,
			wantErr:      true,
		},
		{
			name:   "negative replacement rejected",
			debit:  "10",
			credit: "200",
			replacements: []domain.AssetReplacement{
				rep("b1", "11", "200"),
				rep("b2", "-1", "0"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ledger.ValidateReplacements("trade txn-9", dec(tt.debit), dec(tt.credit), tt.replacements)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateReallocation(t *testing.T) {
	ok := domain.Reallocation{FromBucketID: "b1", ToBucketID: "b2", AssetID: "inr", Quantity: dec("10")}
	assert.NoError(t, ledger.ValidateReallocation(ok))

	sameBucket := ok
	sameBucket.ToBucketID = "b1"
	assert.ErrorIs(t, ledger.ValidateReallocation(sameBucket), apperrors.ErrValidation)

	zeroQty := ok
	zeroQty.Quantity = dec("0")
	assert.ErrorIs(t, ledger.ValidateReallocation(zeroQty), apperrors.ErrValidation)
}
