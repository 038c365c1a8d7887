package order

import (
	"fmt"
	"strings"

	"freshcart/internal/pkg/errs"
)

// PaymentMethod is how the customer pays for an order.
type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

// ParsePaymentMethod accepts the wire values case-insensitively.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "COD", "CASH_ON_DELIVERY", "CASH ON DELIVERY":
		return PaymentMethodCOD, nil
	case "ONLINE":
		return PaymentMethodOnline, nil
	case "":
		return "", errs.NewValueIsRequiredError("payment method is required")
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%q is not a supported payment method", raw),
		)
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentStatus tracks collection of the order amount.
type PaymentStatus string

const (
	PaymentPending      PaymentStatus = "pending"
	PaymentPaid         PaymentStatus = "paid"
	PaymentStatusFailed PaymentStatus = "failed"
	PaymentRefunded     PaymentStatus = "refunded"
)

// ParsePaymentStatus accepts the wire values case-insensitively.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	switch s := PaymentStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case PaymentPending, PaymentPaid, PaymentStatusFailed, PaymentRefunded:
		return s, nil
	case "":
		return "", errs.NewValueIsRequiredError("payment status is required")
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%q is not a supported payment status", raw),
		)
	}
}

// IsPaid reports whether the amount has been collected.
func (s PaymentStatus) IsPaid() bool {
	return s == PaymentPaid
}

func (s PaymentStatus) String() string {
	return string(s)
}
