package order

import (
	"time"

	"freshcart/internal/core/domain/model/kernel"
)

// StatusChanged is raised for every accepted transition and published after the
// surrounding unit of work commits.
type StatusChanged struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	From       Status
	To         Status
	At         time.Time
}
