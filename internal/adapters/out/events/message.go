package events

import (
	"time"

	"freshcart/internal/core/domain/model/order"
)

// StatusUpdateMessage is the wire format of a status change.
type StatusUpdateMessage struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	Label      string    `json:"label"`
	Bucket     string    `json:"bucket"`
	ChangedAt  time.Time `json:"changed_at"`
}

func newStatusUpdateMessage(e order.StatusChanged) StatusUpdateMessage {
	return StatusUpdateMessage{
		OrderID:    e.OrderID.String(),
		CustomerID: e.CustomerID.String(),
		OldStatus:  e.From.String(),
		NewStatus:  e.To.String(),
		Label:      e.To.Label(),
		Bucket:     e.To.Bucket().String(),
		ChangedAt:  e.At,
	}
}

func routingKey(e order.StatusChanged) string {
	return "order.status." + e.To.String()
}
