package commands

import (
	"errors"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"
	"freshcart/internal/pkg/guard"
)

var (
	ErrCreatePartnerCommandIsNotConstructed = errors.New(
		"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
	)
	ErrNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// CreatePartnerCommand registers a delivery partner. A fresh id is generated.
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	name      string
	phone     string

	guard guard.ConstructorGuard
}

func NewCreatePartnerCommand(name, phone string) (CreatePartnerCommand, error) {
	cmd := CreatePartnerCommand{
		partnerID: kernel.NewUUID(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	return cmd, nil
}

func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

func (c CreatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c CreatePartnerCommand) Name() string {
	return c.name
}

func (c CreatePartnerCommand) Phone() string {
	return c.phone
}

func (c *CreatePartnerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreatePartnerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}
