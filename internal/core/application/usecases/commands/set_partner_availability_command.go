package commands

import (
	"errors"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/guard"
)

var ErrSetPartnerAvailabilityCommandIsNotConstructed = errors.New(
	"SetPartnerAvailabilityCommand must be created via NewSetPartnerAvailabilityCommand constructor",
)

// SetPartnerAvailabilityCommand puts a partner on or takes them off the dispatch roster.
type SetPartnerAvailabilityCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	active    bool

	guard guard.ConstructorGuard
}

func NewSetPartnerAvailabilityCommand(partnerID kernel.UUID, active bool) (SetPartnerAvailabilityCommand, error) {
	if err := partnerID.Validate(); err != nil {
		return SetPartnerAvailabilityCommand{}, err
	}

	return SetPartnerAvailabilityCommand{
		partnerID: partnerID,
		active:    active,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetPartnerAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetPartnerAvailabilityCommandIsNotConstructed)
}

func (c SetPartnerAvailabilityCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c SetPartnerAvailabilityCommand) Active() bool {
	return c.active
}
