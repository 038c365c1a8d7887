// Package ports defines the contracts between the order lifecycle core and
// its infrastructure: persistence, transactions and event publishing.
package ports

import (
	"context"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order together with its first timeline entry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the aggregate if and only if the stored version still
	// equals aggregate.Version(). A lost race yields errs.VersionIsInvalidError
	// and nothing is written. New timeline entries are appended, existing ones
	// are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads the order with its complete timeline.
	// Returns errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
