package mapping

import (
	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/innajain/ledger-sub000/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:     d.AssetID,
		Name:        d.Name,
		Type:        models.AssetType(d.Type),
		Code:        d.Code,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:     m.AssetID,
		Name:        m.Name,
		Type:        domain.AssetType(m.Type),
		Code:        m.Code,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAssetSlice converts a slice of model Assets to domain Assets
func ToDomainAssetSlice(ms []models.Asset) []domain.Asset {
	ds := make([]domain.Asset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAsset(m)
	}
	return ds
}
