package services

import (
	"errors"
	"fmt"
	"time"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/core/domain/model/partner"
)

// ErrHandshakeIsNotConstructed is returned when DeliveryHandshake was not built
// through NewDeliveryHandshake.
var ErrHandshakeIsNotConstructed = errors.New("DeliveryHandshake must be created via NewDeliveryHandshake constructor")

// CodeGenerator issues unpredictable six digit codes.
type CodeGenerator interface {
	Generate() (kernel.OTP, error)
}

// Clock is the source of "now" for timeline entries.
type Clock interface {
	Now() time.Time
}

// DeliveryHandshake runs the OTP handshake between dispatch and drop-off.
//
//	NOT_DISPATCHED ──Dispatch──> DISPATCHED ──Complete──> DELIVERED
//
// Example usage:
//
//	handshake := services.NewDeliveryHandshake(codes, clock)
//	if err := handshake.Dispatch(o, p); err != nil {
//	    return err
//	}
//	// later, at the door
//	if err := handshake.Complete(o, submittedCode); err != nil {
//	    return err
//	}
type DeliveryHandshake struct {
	codes CodeGenerator
	clock Clock
}

func NewDeliveryHandshake(codes CodeGenerator, clock Clock) *DeliveryHandshake {
	return &DeliveryHandshake{codes: codes, clock: clock}
}

// Dispatch assigns the order to an active partner and arms the handshake with
// two independently generated codes: one for the partner's screen and one the
// customer reads out at the door.
//
// Preconditions are checked before any code is generated, so a rejected
// dispatch never consumes randomness or mutates the order.
func (h *DeliveryHandshake) Dispatch(o *order.Order, p *partner.Partner) error {
	if err := h.validate(); err != nil {
		return err
	}
	if err := errors.Join(o.Validate(), p.Validate()); err != nil {
		return err
	}
	if err := p.ValidateCanDeliver(); err != nil {
		return err
	}
	if err := o.Status().ValidateDispatch(); err != nil {
		return err
	}

	deliveryOTP, err := h.codes.Generate()
	if err != nil {
		return fmt.Errorf("generate delivery code: %w", err)
	}
	customerOTP, err := h.codes.Generate()
	if err != nil {
		return fmt.Errorf("generate customer code: %w", err)
	}

	return o.Dispatch(p.ID(), deliveryOTP, customerOTP, h.clock.Now())
}

// Complete verifies the submitted code and marks the order delivered.
// See order.Order.CompleteDelivery for the error contract.
func (h *DeliveryHandshake) Complete(o *order.Order, submitted kernel.OTP) error {
	if err := h.validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	return o.CompleteDelivery(submitted, h.clock.Now())
}

func (h *DeliveryHandshake) validate() error {
	if h == nil || h.codes == nil || h.clock == nil {
		return ErrHandshakeIsNotConstructed
	}
	return nil
}
