package commands

import (
	"errors"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order on behalf of a customer. It stands in for
// the checkout flow, which lives in another service.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, "COD", "pending")
//	if err != nil {
//	    return err
//	}
//	if err = handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Printf("placed order %s", cmd.OrderID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	paymentMethod order.PaymentMethod
	paymentStatus order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand assigns a fresh order id and parses the payment fields.
func NewCreateOrderCommand(customerID kernel.UUID, paymentMethod, paymentStatus string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderID: kernel.NewUUID(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setPaymentStatus(paymentStatus),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c CreateOrderCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(raw string) error {
	method, err := order.ParsePaymentMethod(raw)
	if err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}

// setPaymentStatus defaults an empty status to pending.
func (c *CreateOrderCommand) setPaymentStatus(raw string) error {
	if raw == "" {
		c.paymentStatus = order.PaymentPending
		return nil
	}
	status, err := order.ParsePaymentStatus(raw)
	if err != nil {
		return err
	}
	c.paymentStatus = status
	return nil
}
