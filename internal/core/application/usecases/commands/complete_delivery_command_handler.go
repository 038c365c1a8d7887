package commands

import (
	"context"
	"errors"

	"freshcart/internal/core/domain/services"
	"freshcart/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler verifies the customer's code and marks the
// order delivered. Status, timeline, deliveryCompletedAt and the cash on
// delivery payment change in a single version-checked update.
//
// Example:
//
//	cmd, err := NewCompleteDeliveryCommand(orderID, "012345")
//	if err != nil {
//	    return err // "OTP is required" or "Invalid OTP"
//	}
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrValueIsInvalid):
//	    // wrong code, the order is unchanged
//	case errors.Is(err, errs.ErrInvalidState):
//	    // not dispatched or already delivered
//	}
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	handshake  *services.DeliveryHandshake
}

func NewCompleteDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	handshake *services.DeliveryHandshake,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		handshake:  handshake,
	}
}

func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	if err = h.handshake.Complete(o, cmd.SubmittedCode()); err != nil {
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
