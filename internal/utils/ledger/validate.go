package ledger

import (
	"fmt"

	"github.com/innajain/ledger-sub000/internal/apperrors"
	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumAllocations returns the exact decimal sum of allocation quantities.
func SumAllocations(allocations []domain.Allocation) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range allocations {
		sum = sum.Add(a.Quantity)
	}
	return sum
}

// ValidateAllocations enforces that allocations decompose the parent quantity
// exactly. parentName identifies the mismatched parent in the error so the
// caller can surface it. Comparison is exact; quantities are financial and no
// epsilon tolerance is acceptable.
func ValidateAllocations(parentName string, parentQuantity decimal.Decimal, allocations []domain.Allocation) error {
	if len(allocations) == 0 {
		return fmt.Errorf("%w: %s has no allocations", apperrors.ErrValidation, parentName)
	}
	zero := decimal.Zero
	for _, a := range allocations {
		if a.Quantity.LessThanOrEqual(zero) {
			return fmt.Errorf("%w: allocation quantity must be positive for bucket %s on %s", apperrors.ErrValidation, a.BucketID, parentName)
		}
	}
	if sum := SumAllocations(allocations); !sum.Equal(parentQuantity) {
		return fmt.Errorf("%w: allocations for %s sum to %s, expected %s", apperrors.ErrValidation, parentName, sum.String(), parentQuantity.String())
	}
	return nil
}

// ValidateReplacements enforces that trade replacements fully cover the debit
// and credit quantities. The two sides are validated independently.
func ValidateReplacements(parentName string, debitQuantity, creditQuantity decimal.Decimal, replacements []domain.AssetReplacement) error {
	if len(replacements) == 0 {
		return fmt.Errorf("%w: %s has no replacements", apperrors.ErrValidation, parentName)
	}
	debitSum := decimal.Zero
	creditSum := decimal.Zero
	for _, r := range replacements {
		if r.DebitQuantity.IsNegative() || r.CreditQuantity.IsNegative() {
			return fmt.Errorf("%w: replacement quantities must not be negative for bucket %s on %s", apperrors.ErrValidation, r.BucketID, parentName)
		}
		debitSum = debitSum.Add(r.DebitQuantity)
		creditSum = creditSum.Add(r.CreditQuantity)
	}
	if !debitSum.Equal(debitQuantity) {
		return fmt.Errorf("%w: replacements for %s cover debit %s, expected %s", apperrors.ErrValidation, parentName, debitSum.String(), debitQuantity.String())
	}
	if !creditSum.Equal(creditQuantity) {
		return fmt.Errorf("%w: replacements for %s cover credit %s, expected %s", apperrors.ErrValidation, parentName, creditSum.String(), creditQuantity.String())
	}
	return nil
}

// ValidateReallocation checks the standing constraints on a bucket to bucket
// reallocation: distinct buckets and a positive quantity.
func ValidateReallocation(r domain.Reallocation) error {
	if r.FromBucketID == r.ToBucketID {
		return fmt.Errorf("%w: reallocation source and destination buckets must differ", apperrors.ErrValidation)
	}
	if r.Quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: reallocation quantity must be positive", apperrors.ErrValidation)
	}
	return nil
}
