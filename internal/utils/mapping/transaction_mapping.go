package mapping

import (
	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/innajain/ledger-sub000/internal/models"
)

// ToModelTransaction converts the common part of a domain Transaction to its
// model row. Sub-records are mapped separately.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Type:          models.TransactionType(d.Type),
		Date:          d.Date,
		Description:   d.Description,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction row to a domain
// Transaction shell; the caller attaches the sub-record.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Type:          domain.TransactionType(m.Type),
		Date:          m.Date,
		Description:   m.Description,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelReplacement converts a domain AssetReplacement to its model row.
func ToModelReplacement(d domain.AssetReplacement) models.AssetReplacement {
	return models.AssetReplacement{
		ReplacementID:  d.ReplacementID,
		TransactionID:  d.TransactionID,
		BucketID:       d.BucketID,
		DebitQuantity:  d.DebitQuantity,
		CreditQuantity: d.CreditQuantity,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReplacement converts a model AssetReplacement to its domain form.
func ToDomainReplacement(m models.AssetReplacement) domain.AssetReplacement {
	return domain.AssetReplacement{
		ReplacementID:  m.ReplacementID,
		TransactionID:  m.TransactionID,
		BucketID:       m.BucketID,
		DebitQuantity:  m.DebitQuantity,
		CreditQuantity: m.CreditQuantity,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
