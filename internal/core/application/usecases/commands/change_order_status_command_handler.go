package commands

import (
	"context"
	"errors"

	"freshcart/internal/core/domain/services"
	"freshcart/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler applies a manual lifecycle transition.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      services.Clock
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	clock services.Clock,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ChangeStatus(cmd.Status(), h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return resolveConflict(ctx, uow, cmd.OrderID(), err)
		}
		return err
	}

	return uow.Commit(ctx)
}
