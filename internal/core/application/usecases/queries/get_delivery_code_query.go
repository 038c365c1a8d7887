package queries

import (
	"errors"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"
	"freshcart/internal/pkg/guard"
)

var (
	ErrGetDeliveryCodeQueryIsNotConstructed = errors.New(
		"GetDeliveryCodeQuery must be created via NewGetDeliveryCodeQuery constructor",
	)
)

// GetDeliveryCodeQuery reads the code shown on the partner's dispatch screen.
// It is only answered while the order is under delivery.
type GetDeliveryCodeQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetDeliveryCodeQuery(orderID string) (GetDeliveryCodeQuery, error) {
	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return GetDeliveryCodeQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return GetDeliveryCodeQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryCodeQueryIsNotConstructed)
}

func (q GetDeliveryCodeQuery) OrderID() kernel.UUID {
	return q.orderID
}

type GetDeliveryCodeQueryResponse struct {
	OrderID     kernel.UUID
	PartnerID   kernel.UUID
	DeliveryOTP string
}
