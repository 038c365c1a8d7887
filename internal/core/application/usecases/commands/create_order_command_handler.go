package commands

import (
	"context"

	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/core/domain/services"
)

// CreateOrderCommandHandler persists a newly placed order in the Pending stage.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      services.Clock
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock services.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.PaymentMethod(), cmd.PaymentStatus(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
