package mapping

import (
	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/innajain/ledger-sub000/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToModelOpeningBalance converts a domain OpeningBalance to its model,
// without its allocations (those are separate rows).
func ToModelOpeningBalance(d domain.OpeningBalance) models.OpeningBalance {
	return models.OpeningBalance{
		OpeningBalanceID: d.OpeningBalanceID,
		AccountID:        d.AccountID,
		AssetID:          d.AssetID,
		Quantity:         d.Quantity,
		Date:             d.Date,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOpeningBalance converts a model OpeningBalance to its domain form;
// the caller attaches allocations.
func ToDomainOpeningBalance(m models.OpeningBalance) domain.OpeningBalance {
	return domain.OpeningBalance{
		OpeningBalanceID: m.OpeningBalanceID,
		AccountID:        m.AccountID,
		AssetID:          m.AssetID,
		Quantity:         m.Quantity,
		Date:             m.Date,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAllocation converts a domain Allocation to a model Allocation
func ToModelAllocation(d domain.Allocation) models.Allocation {
	return models.Allocation{
		AllocationID: d.AllocationID,
		ParentID:     d.ParentID,
		BucketID:     d.BucketID,
		Quantity:     d.Quantity,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAllocation converts a model Allocation to a domain Allocation
func ToDomainAllocation(m models.Allocation) domain.Allocation {
	return domain.Allocation{
		AllocationID: m.AllocationID,
		ParentID:     m.ParentID,
		BucketID:     m.BucketID,
		Quantity:     m.Quantity,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
