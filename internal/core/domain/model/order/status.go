package order

import (
	"fmt"

	"freshcart/internal/pkg/errs"
)

// Status is the canonical lifecycle stage of an order.
//
// Producers historically wrote many spellings for the same stage; ParseStatus and
// Classify map all of them onto this closed set.
//
//	Pending ─> Approved ─> Accepted ─> Purchased ─> Shipped ─┐
//	   │                      │                              │
//	   └─> Confirmed ─> Preparing ──────────────────────────>┤
//	                                                         v
//	                        (Dispatch) OutForDelivery ─(CompleteDelivery)─> Delivered
//
// Every non-terminal stage may also move to Cancelled.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Approved
	Accepted
	Confirmed
	Preparing
	Purchased
	Shipped
	PickedUp
	InTransit
	ReadyForDelivery
	OutForDelivery
	AssignedPendingOTP
	Delivered
	Completed
	Cancelled
	Rejected
	Refunded
	PaymentFailed
	Returned
)

type statusInfo struct {
	code   string
	label  string
	bucket Bucket
}

func getStatusInfo() map[Status]statusInfo {
	return map[Status]statusInfo{
		Pending:            {"pending", "Order Placed", BucketProcessing},
		Approved:           {"approved", "Approved", BucketProcessing},
		Accepted:           {"accepted", "Accepted", BucketProcessing},
		Confirmed:          {"confirmed", "Confirmed", BucketProcessing},
		Preparing:          {"preparing", "Preparing", BucketProcessing},
		Purchased:          {"purchased", "Purchased", BucketProcessing},
		Shipped:            {"shipped", "Shipped", BucketUnderDelivery},
		PickedUp:           {"picked_up", "Picked Up", BucketUnderDelivery},
		InTransit:          {"in_transit", "In Transit", BucketUnderDelivery},
		ReadyForDelivery:   {"ready_for_delivery", "Ready for Delivery", BucketUnderDelivery},
		OutForDelivery:     {"out_for_delivery", "Out for Delivery", BucketUnderDelivery},
		AssignedPendingOTP: {"assigned_pending_otp", "Assigned Pending OTP", BucketUnderDelivery},
		Delivered:          {"delivered", "Delivered", BucketCompleted},
		Completed:          {"completed", "Completed", BucketCompleted},
		Cancelled:          {"cancelled", "Cancelled", BucketCancelled},
		Rejected:           {"rejected", "Rejected", BucketCancelled},
		Refunded:           {"refunded", "Refunded", BucketCancelled},
		PaymentFailed:      {"payment_failed", "Payment Failed", BucketCancelled},
		Returned:           {"returned", "Returned", BucketCancelled},
	}
}

// getTransitions lists the stages ChangeStatus may move to. Dispatched stages are
// absent on purpose: they are entered only through Dispatch, which issues the OTPs.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and legacy stages have no outgoing transitions
	return map[Status][]Status{
		Pending:            {Approved, Confirmed, Rejected, PaymentFailed, Cancelled},
		Approved:           {Accepted, Rejected, Cancelled},
		Accepted:           {Purchased, Preparing, Cancelled},
		Confirmed:          {Preparing, Cancelled},
		Preparing:          {Purchased, Shipped, Cancelled},
		Purchased:          {Shipped, Cancelled},
		Shipped:            {PickedUp, InTransit, Cancelled},
		PickedUp:           {InTransit, Cancelled},
		InTransit:          {Cancelled},
		ReadyForDelivery:   {Cancelled},
		OutForDelivery:     {Cancelled},
		AssignedPendingOTP: {Cancelled},
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusInfo()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case wire code, or "unknown".
func (s Status) String() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.code
	}
	return "unknown"
}

// Label is the human readable name written into the status timeline.
func (s Status) Label() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.label
	}
	return "Unknown"
}

// Bucket returns the display bucket of the stage. Unknown falls into processing.
func (s Status) Bucket() Bucket {
	if info, ok := getStatusInfo()[s]; ok {
		return info.bucket
	}
	return BucketProcessing
}

// IsDispatched reports whether the stage holds live delivery OTPs.
func (s Status) IsDispatched() bool {
	return s == ReadyForDelivery || s == OutForDelivery || s == AssignedPendingOTP
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	b := s.Bucket()
	return b == BucketCompleted || b == BucketCancelled
}

// ValidateTransition checks that ChangeStatus may move from s to next.
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return nil
		}
	}
	return errs.NewInvalidStateErrorWithCause(
		"status transition is not allowed",
		fmt.Errorf("%s cannot move to %s", s, next),
	)
}

// ValidateDispatch checks that an order in stage s may be handed to a delivery partner.
func (s Status) ValidateDispatch() error {
	switch {
	case s == Unknown:
		return s.Validate()
	case s.IsDispatched():
		return errs.NewInvalidStateErrorWithCause("order is already dispatched", fmt.Errorf("status is %s", s))
	case s.IsTerminal():
		return errs.NewInvalidStateErrorWithCause("order can not be dispatched", fmt.Errorf("status is %s", s))
	default:
		return nil
	}
}

// ValidateCompleteDelivery checks that an order in stage s is awaiting its OTP.
func (s Status) ValidateCompleteDelivery() error {
	switch {
	case s.Bucket() == BucketCompleted:
		return errs.NewInvalidStateErrorWithCause("order is already delivered", fmt.Errorf("status is %s", s))
	case !s.IsDispatched():
		return errs.NewInvalidStateErrorWithCause("order is not out for delivery", fmt.Errorf("status is %s", s))
	default:
		return nil
	}
}
