package ports

import (
	"context"

	"freshcart/internal/core/domain/model/order"
)

// EventPublisher forwards committed status changes to other services.
// Implementations are called after the transaction commits and must not
// assume they run inside it.
type EventPublisher interface {
	Publish(ctx context.Context, events []order.StatusChanged) error
}
