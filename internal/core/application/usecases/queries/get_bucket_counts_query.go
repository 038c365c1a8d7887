package queries

import (
	"errors"

	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/pkg/guard"
)

var (
	ErrGetBucketCountsQueryIsNotConstructed = errors.New(
		"GetBucketCountsQuery must be created via NewGetBucketCountsQuery constructor",
	)
)

// GetBucketCountsQuery counts all stored orders per display bucket. It feeds
// the bucket gauge refreshed by the metrics job.
type GetBucketCountsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetBucketCountsQuery() GetBucketCountsQuery {
	return GetBucketCountsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetBucketCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetBucketCountsQueryIsNotConstructed)
}

type BucketCount struct {
	Bucket order.Bucket
	Count  int64
}
