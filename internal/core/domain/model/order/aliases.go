package order

import (
	"fmt"
	"strings"

	"freshcart/internal/pkg/errs"
)

// aliases is the single table of every status spelling seen in stored orders.
// Keys are normalized (see normalize); each maps to exactly one Status.
var aliases = map[string]Status{
	// completed
	"completed":             Completed,
	"complete":              Completed,
	"order completed":       Completed,
	"delivery completed":    Completed,
	"delivered":             Delivered,
	"delivered to customer": Delivered,

	// cancelled
	"cancelled":             Cancelled,
	"canceled":              Cancelled,
	"cancelled by customer": Cancelled,
	"cancelled by seller":   Cancelled,
	"rejected":              Rejected,
	"rejected by seller":    Rejected,
	"refunded":              Refunded,
	"payment failed":        PaymentFailed,
	"returned":              Returned,

	// under delivery
	"out for delivery":     OutForDelivery,
	"dispatched":           OutForDelivery,
	"ready for delivery":   ReadyForDelivery,
	"assigned pending otp": AssignedPendingOTP,
	"picked up":            PickedUp,
	"in transit":           InTransit,
	"shipped":              Shipped,

	// processing
	"pending":                 Pending,
	"order placed":            Pending,
	"placed":                  Pending,
	"pending seller approval": Pending,
	"approved":                Approved,
	"accepted":                Accepted,
	"confirmed":               Confirmed,
	"preparing":               Preparing,
	"processing":              Preparing,
	"purchased":               Purchased,
}

// normalize trims, lowercases, treats '_' as a space and collapses runs of separators.
func normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// ParseStatus is the strict parser: it accepts any known spelling and rejects the rest.
func ParseStatus(raw string) (Status, error) {
	if s, ok := aliases[normalize(raw)]; ok {
		return s, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a known status", raw),
	)
}
