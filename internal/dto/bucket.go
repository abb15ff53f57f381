package dto

import "github.com/innajain/ledger-sub000/internal/core/domain"

// CreateBucketRequest defines the data needed to create a new purpose bucket.
type CreateBucketRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateBucketRequest defines the data allowed for updating a bucket.
type UpdateBucketRequest struct {
	Name *string `json:"name"`
}

// BucketResponse defines the data returned for a purpose bucket.
type BucketResponse struct {
	BucketID string `json:"bucketID"`
	Name     string `json:"name"`
}

// ToBucketResponse converts a domain.PurposeBucket to BucketResponse DTO
func ToBucketResponse(b *domain.PurposeBucket) BucketResponse {
	return BucketResponse{
		BucketID: b.BucketID,
		Name:     b.Name,
	}
}

// ToListBucketResponse converts a slice of domain.PurposeBucket to BucketResponse DTOs
func ToListBucketResponse(buckets []domain.PurposeBucket) []BucketResponse {
	res := make([]BucketResponse, len(buckets))
	for i := range buckets {
		res[i] = ToBucketResponse(&buckets[i])
	}
	return res
}
