package kernel

import (
	"crypto/subtle"
	"errors"

	"freshcart/internal/pkg/errs"
	"freshcart/internal/pkg/guard"
)

// OTPLength is the number of digits in every delivery code.
const OTPLength = 6

// Messages carried by OTP validation errors. They are surfaced verbatim to API clients.
const (
	MsgOTPIsRequired = "OTP is required"
	MsgOTPIsInvalid  = "Invalid OTP"
)

var ErrOTPIsNotConstructed = errors.New("OTP must be created via NewOTP constructor")

// OTP is a one-time numeric delivery code: exactly OTPLength ASCII digits,
// leading zeros significant ("012345" and "12345" are different codes).
type OTP struct {
	value string
	guard guard.ConstructorGuard
}

// NewOTP validates raw without normalizing it.
// An empty value yields a ValueIsRequiredError, anything that is not exactly six
// digits yields a ValueIsInvalidError.
func NewOTP(raw string) (OTP, error) {
	if raw == "" {
		return OTP{}, errs.NewValueIsRequiredError(MsgOTPIsRequired)
	}
	if len(raw) != OTPLength {
		return OTP{}, errs.NewValueIsInvalidError(MsgOTPIsInvalid)
	}
	for i := range len(raw) {
		if raw[i] < '0' || raw[i] > '9' {
			return OTP{}, errs.NewValueIsInvalidError(MsgOTPIsInvalid)
		}
	}

	return OTP{value: raw, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrOTPIsNotConstructed for the zero value.
func (o OTP) Validate() error {
	return o.guard.Validate(ErrOTPIsNotConstructed)
}

// IsZero reports whether no code is held.
func (o OTP) IsZero() bool {
	return o.value == ""
}

func (o OTP) String() string {
	return o.value
}

// Matches compares two codes for exact equality in constant time.
// A zero OTP never matches anything.
func (o OTP) Matches(other OTP) bool {
	if o.IsZero() || other.IsZero() {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(o.value), []byte(other.value)) == 1
}
