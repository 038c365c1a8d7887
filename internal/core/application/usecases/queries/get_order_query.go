package queries

import (
	"errors"
	"time"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"
	"freshcart/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery reads the snapshot of a single order, timeline included.
//
// Example:
//
//	query, err := NewGetOrderQuery("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return err
//	}
//	snapshot, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return GetOrderQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the read model of an order. Only the partner's
// delivery code is carried, read from the same row as the status, so that the
// dispatcher can show it; the customer code is never part of it.
type GetOrderQueryResponse struct {
	ID                  kernel.UUID
	CustomerID          kernel.UUID
	Status              StatusView
	DeliveryPartnerID   *kernel.UUID
	PaymentMethod       string
	PaymentStatus       string
	PlacedAt            time.Time
	DeliveryCompletedAt *time.Time
	Version             int
	Timeline            []TimelineItem

	// DeliveryOTP is empty unless the order is out for delivery.
	DeliveryOTP string
}

// TimelineItem is one entry of the status history, oldest first.
type TimelineItem struct {
	Status StatusView
	At     time.Time
}
