package events

import (
	"context"
	"log/slog"

	"freshcart/internal/core/domain/model/order"
)

type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger.With("component", "event_log")}
}

func (p *LogPublisher) Publish(ctx context.Context, events []order.StatusChanged) error {
	for _, e := range events {
		p.logger.InfoContext(ctx, "order status changed",
			"order_id", e.OrderID.String(),
			"from", e.From.String(),
			"to", e.To.String(),
			"bucket", e.To.Bucket().String(),
		)
	}
	return nil
}
