package commands

import (
	"errors"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand carries the code the courier collected at the door.
// The code format is checked here, before any order is loaded.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	submittedCode kernel.OTP

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand fails with "OTP is required" for an empty code and
// "Invalid OTP" for anything other than six ASCII digits.
func NewCompleteDeliveryCommand(orderID kernel.UUID, submittedCode string) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSubmittedCode(submittedCode); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	if err := cmd.setOrderID(orderID); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CompleteDeliveryCommand) SubmittedCode() kernel.OTP {
	return c.submittedCode
}

func (c *CompleteDeliveryCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CompleteDeliveryCommand) setSubmittedCode(raw string) error {
	code, err := kernel.NewOTP(raw)
	if err != nil {
		return err
	}
	c.submittedCode = code
	return nil
}
