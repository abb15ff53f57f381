package mapping

import (
	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/innajain/ledger-sub000/internal/models"
)

// ToModelBucket converts a domain PurposeBucket to a model PurposeBucket
func ToModelBucket(d domain.PurposeBucket) models.PurposeBucket {
	return models.PurposeBucket{
		BucketID:    d.BucketID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBucket converts a model PurposeBucket to a domain PurposeBucket
func ToDomainBucket(m models.PurposeBucket) domain.PurposeBucket {
	return domain.PurposeBucket{
		BucketID:    m.BucketID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBucketSlice converts a slice of model PurposeBuckets to domain ones
func ToDomainBucketSlice(ms []models.PurposeBucket) []domain.PurposeBucket {
	ds := make([]domain.PurposeBucket, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBucket(m)
	}
	return ds
}

// ToModelReallocation converts a domain Reallocation to a model Reallocation
func ToModelReallocation(d domain.Reallocation) models.Reallocation {
	return models.Reallocation{
		ReallocationID: d.ReallocationID,
		FromBucketID:   d.FromBucketID,
		ToBucketID:     d.ToBucketID,
		AssetID:        d.AssetID,
		Quantity:       d.Quantity,
		Date:           d.Date,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReallocation converts a model Reallocation to a domain Reallocation
func ToDomainReallocation(m models.Reallocation) domain.Reallocation {
	return domain.Reallocation{
		ReallocationID: m.ReallocationID,
		FromBucketID:   m.FromBucketID,
		ToBucketID:     m.ToBucketID,
		AssetID:        m.AssetID,
		Quantity:       m.Quantity,
		Date:           m.Date,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReallocationSlice converts model Reallocations to domain ones
func ToDomainReallocationSlice(ms []models.Reallocation) []domain.Reallocation {
	ds := make([]domain.Reallocation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReallocation(m)
	}
	return ds
}
