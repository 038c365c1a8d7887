package commands

import (
	"context"
)

// SetPartnerAvailabilityCommandHandler activates or deactivates a partner.
// Orders already dispatched to the partner are not affected.
type SetPartnerAvailabilityCommandHandler struct {
	uowFactory PartnerUoWFactory
}

func NewSetPartnerAvailabilityCommandHandler(uowFactory PartnerUoWFactory) SetPartnerAvailabilityCommandHandler {
	return SetPartnerAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetPartnerAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetPartnerAvailabilityCommand) error {
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

	partnerRepo := uow.PartnerRepository()
	p, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if cmd.Active() {
		p.Activate()
	} else {
		p.Deactivate()
	}

	if err = partnerRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
