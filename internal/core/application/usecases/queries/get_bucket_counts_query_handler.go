package queries

import (
	"context"

	"freshcart/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetBucketCountsQueryHandler struct {
	db *gorm.DB
}

func NewGetBucketCountsQueryHandler(db *gorm.DB) GetBucketCountsQueryHandler {
	return GetBucketCountsQueryHandler{db: db}
}

// Handle groups by the stored status text and classifies in Go, so legacy
// spellings are counted in the same bucket as their canonical form. All buckets
// are returned in display order.
func (h GetBucketCountsQueryHandler) Handle(ctx context.Context, query GetBucketCountsQuery) ([]BucketCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[order.Bucket]int64, len(order.Buckets()))
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		totals[order.Classify(status)] += count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	counts := make([]BucketCount, 0, len(order.Buckets()))
	for _, b := range order.Buckets() {
		counts = append(counts, BucketCount{Bucket: b, Count: totals[b]})
	}

	return counts, nil
}
