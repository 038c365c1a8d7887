package commands

import (
	"context"
	"errors"

	"freshcart/internal/core/domain/services"
	"freshcart/internal/pkg/errs"
)

// DispatchOrderCommandHandler assigns the partner and issues the delivery codes
// in one transaction.
//
// Example:
//
//	handler := NewDispatchOrderCommandHandler(uowFactory, services.NewDeliveryHandshake(codes, clock))
//	cmd, _ := NewDispatchOrderCommand(orderID, partnerID)
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order or partner
//	case errors.Is(err, errs.ErrInvalidState):
//	    // already dispatched, closed, or partner inactive
//	}
type DispatchOrderCommandHandler struct {
	uowFactory UoWFactory
	handshake  *services.DeliveryHandshake
}

func NewDispatchOrderCommandHandler(
	uowFactory UoWFactory,
	handshake *services.DeliveryHandshake,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		handshake:  handshake,
	}
}

func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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
	partnerRepo := uow.PartnerRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	p, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = h.handshake.Dispatch(o, p); err != nil {
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
