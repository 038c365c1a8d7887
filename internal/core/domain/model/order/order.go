package order

import (
	"errors"
	"fmt"
	"time"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"
	"freshcart/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order did not come from NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the order lifecycle. It owns the authoritative
// status, the append-only status timeline and the delivery handshake secrets.
//
// Order follows these invariants:
//   - the timeline starts with an "Order Placed" entry and grows by exactly one
//     entry per accepted transition
//   - the OTPs are held if and only if the status is a dispatched stage
//   - deliveryCompletedAt is set once, together with the Delivered status
//
// Rejected operations leave the aggregate untouched.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID

	status   Status
	timeline []TimelineEntry

	// deliveryOTP is shown to the partner, customerOTP to the customer.
	deliveryOTP kernel.OTP
	customerOTP kernel.OTP

	deliveryPartnerID   *kernel.UUID
	paymentMethod       PaymentMethod
	paymentStatus       PaymentStatus
	deliveryCompletedAt *time.Time

	// version is the optimistic concurrency token of the persisted row.
	version int

	events []StatusChanged
	guard  guard.ConstructorGuard
}

// NewOrder places a new order in the Pending stage with its first timeline entry.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, order.PaymentMethodCOD, order.PaymentPending, clock.Now())
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:   Pending,
		timeline: []TimelineEntry{NewTimelineEntry(Pending, now)},
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setPayment(paymentMethod, paymentStatus),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// State is the persisted shape of an Order, used by RestoreOrder.
type State struct {
	ID                  kernel.UUID
	CustomerID          kernel.UUID
	Status              Status
	Timeline            []TimelineEntry
	DeliveryOTP         kernel.OTP
	CustomerOTP         kernel.OTP
	DeliveryPartnerID   *kernel.UUID
	PaymentMethod       PaymentMethod
	PaymentStatus       PaymentStatus
	DeliveryCompletedAt *time.Time
	Version             int
}

// RestoreOrder rebuilds an order from storage and re-checks its invariants.
func RestoreOrder(state State) (*Order, error) {
	o := &Order{
		status:              state.Status,
		timeline:            append([]TimelineEntry(nil), state.Timeline...),
		deliveryOTP:         state.DeliveryOTP,
		customerOTP:         state.CustomerOTP,
		deliveryPartnerID:   state.DeliveryPartnerID,
		deliveryCompletedAt: state.DeliveryCompletedAt,
		version:             state.Version,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(state.ID),
		o.setCustomerID(state.CustomerID),
		o.setPayment(state.PaymentMethod, state.PaymentStatus),
		state.Status.Validate(),
		o.validateTimeline(),
		o.validateHandshake(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) Status() Status {
	return o.status
}

// Bucket is the display bucket of the current status.
func (o *Order) Bucket() Bucket {
	return o.status.Bucket()
}

// Timeline returns a copy of the status history, oldest first.
func (o *Order) Timeline() []TimelineEntry {
	return append([]TimelineEntry(nil), o.timeline...)
}

func (o *Order) DeliveryOTP() kernel.OTP {
	return o.deliveryOTP
}

func (o *Order) CustomerOTP() kernel.OTP {
	return o.customerOTP
}

// DeliveryPartner returns the assigned partner, nil before dispatch.
func (o *Order) DeliveryPartner() *kernel.UUID {
	return o.deliveryPartnerID
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// DeliveryCompletedAt is nil until the handshake succeeds.
func (o *Order) DeliveryCompletedAt() *time.Time {
	return o.deliveryCompletedAt
}

// Version is the concurrency token the order was loaded with.
func (o *Order) Version() int {
	return o.version
}

// DomainEvents returns the transitions raised since the order was loaded.
func (o *Order) DomainEvents() []StatusChanged {
	return append([]StatusChanged(nil), o.events...)
}

// ClearDomainEvents drops raised events once they have been published.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

// Dispatch hands the order to a delivery partner and arms the handshake.
//
// The order must not be dispatched already and must not be terminal. Both codes
// must be valid and are expected to be generated independently.
func (o *Order) Dispatch(partnerID kernel.UUID, deliveryOTP, customerOTP kernel.OTP, now time.Time) error {
	if err := errors.Join(
		partnerID.Validate(),
		deliveryOTP.Validate(),
		customerOTP.Validate(),
	); err != nil {
		return err
	}

	if err := o.status.ValidateDispatch(); err != nil {
		return err
	}

	o.deliveryPartnerID = &partnerID
	o.deliveryOTP = deliveryOTP
	o.customerOTP = customerOTP
	o.transition(OutForDelivery, now)
	return nil
}

// CompleteDelivery finishes the handshake with the code the courier collected
// from the customer.
//
// On success the order becomes Delivered, deliveryCompletedAt is set, the OTPs
// are cleared and a pending cash-on-delivery payment is marked paid.
// Errors:
//   - InvalidStateError when the order is already delivered or was never dispatched
//   - ValueIsInvalidError ("Invalid OTP") when the code does not match
func (o *Order) CompleteDelivery(submitted kernel.OTP, now time.Time) error {
	if err := submitted.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(kernel.MsgOTPIsRequired, err)
	}

	if o.deliveryCompletedAt != nil {
		return errs.NewInvalidStateError("order is already delivered")
	}
	if err := o.status.ValidateCompleteDelivery(); err != nil {
		return err
	}

	if !o.customerOTP.Matches(submitted) {
		return errs.NewValueIsInvalidError(kernel.MsgOTPIsInvalid)
	}

	completedAt := now
	o.deliveryCompletedAt = &completedAt
	o.deliveryOTP = kernel.OTP{}
	o.customerOTP = kernel.OTP{}
	if o.paymentMethod == PaymentMethodCOD && !o.paymentStatus.IsPaid() {
		o.paymentStatus = PaymentPaid
	}
	o.transition(Delivered, now)
	return nil
}

// ChangeStatus applies a manual lifecycle transition (seller, admin or
// cancellation). Dispatched and delivered stages are reachable only through
// Dispatch and CompleteDelivery.
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	if err := o.status.ValidateTransition(next); err != nil {
		return err
	}

	if o.status.IsDispatched() {
		o.deliveryOTP = kernel.OTP{}
		o.customerOTP = kernel.OTP{}
	}
	o.transition(next, now)
	return nil
}

func (o *Order) transition(next Status, now time.Time) {
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		CustomerID: o.customerID,
		From:       o.status,
		To:         next,
		At:         now,
	})
	o.status = next
	o.timeline = append(o.timeline, NewTimelineEntry(next, now))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setPayment(method PaymentMethod, status PaymentStatus) error {
	parsedMethod, err := ParsePaymentMethod(string(method))
	if err != nil {
		return err
	}
	parsedStatus, err := ParsePaymentStatus(string(status))
	if err != nil {
		return err
	}
	o.paymentMethod = parsedMethod
	o.paymentStatus = parsedStatus
	return nil
}

func (o *Order) validateTimeline() error {
	if len(o.timeline) == 0 {
		return errs.NewValueIsRequiredError("status timeline")
	}
	return nil
}

func (o *Order) validateHandshake() error {
	hasCodes := !o.customerOTP.IsZero() && !o.deliveryOTP.IsZero()
	if o.status.IsDispatched() != hasCodes {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery OTPs are inconsistent",
			fmt.Errorf("status %s with codes present: %t", o.status, hasCodes),
		)
	}
	if o.status.IsDispatched() && o.deliveryPartnerID == nil {
		return errs.NewValueIsRequiredError("delivery partner")
	}
	if o.deliveryCompletedAt != nil && o.status.Bucket() != BucketCompleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery completion is inconsistent",
			fmt.Errorf("status %s with deliveryCompletedAt set", o.status),
		)
	}
	return nil
}
