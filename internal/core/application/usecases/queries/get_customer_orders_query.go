package queries

import (
	"errors"
	"time"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/pkg/errs"
	"freshcart/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery lists a customer's orders grouped by display bucket.
//
// Example:
//
//	query, err := NewGetCustomerOrdersQuery(customerID)
//	if err != nil {
//	    return err
//	}
//	groups, err := handler.Handle(ctx, query)
//	for _, g := range groups {
//	    fmt.Printf("%s: %d orders\n", g.Bucket, len(g.Orders))
//	}
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetCustomerOrdersQuery(customerID string) (GetCustomerOrdersQuery, error) {
	id, err := kernel.UUIDFromString(customerID)
	if err != nil {
		return GetCustomerOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}
	return GetCustomerOrdersQuery{customerID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// CustomerOrderGroup holds the orders of one bucket, newest first. Every bucket
// is present in the response, empty ones included.
type CustomerOrderGroup struct {
	Bucket order.Bucket
	Orders []CustomerOrderItem
}

// CustomerOrderItem is an order as the customer sees it. CustomerOTP is only
// filled while the order is under delivery, since it is the code the customer
// reads out to the partner.
type CustomerOrderItem struct {
	ID            kernel.UUID
	Status        StatusView
	PaymentMethod string
	PaymentStatus string
	PlacedAt      time.Time
	CustomerOTP   string
}
