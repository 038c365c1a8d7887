package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"freshcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "6f1c")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "6f1c", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 6f1c", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("partner", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: partner, ID is: 42 (cause: connection reset)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("Invalid OTP")
	assert.Equal(t, "value is invalid: Invalid OTP", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	withCause := errs.NewValueIsInvalidErrorWithCause("status is invalid", errors.New("boom"))
	assert.Equal(t, "value is invalid: status is invalid (cause: boom)", withCause.Error())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 1, 99)
		assert.Equal(t, "value is invalid: 150 is quantity, min value is 1, max value is 99", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("OTP is required")
	assert.Equal(t, "value is required: OTP is required", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidErrorWithCause("order", errors.New("0 rows affected"))
	assert.Equal(t, "version is invalid: order (cause: 0 rows affected)", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)

	assert.Equal(t, "version is invalid: order", errs.NewVersionIsInvalidError("order").Error())
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateErrorWithCause("order is already delivered", errors.New("delivered"))
	assert.Equal(t, "invalid state: order is already delivered (cause: delivered)", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestKind(t *testing.T) {
	testCases := []struct {
		err  error
		kind string
	}{
		{nil, ""},
		{errs.NewValueIsRequiredError("OTP is required"), errs.KindValidation},
		{errs.NewValueIsInvalidError("Invalid OTP"), errs.KindValidation},
		{errs.NewValueIsOutOfRangeError("x", 1, 2, 3), errs.KindValidation},
		{errs.NewObjectNotFoundError("order", "1"), errs.KindNotFound},
		{errs.NewInvalidStateError("order is not dispatched"), errs.KindInvalidState},
		{errs.NewVersionIsInvalidError("order"), errs.KindConflict},
		{fmt.Errorf("wrapped: %w", errs.NewInvalidStateError("x")), errs.KindInvalidState},
		{errors.New("disk full"), errs.KindInternal},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.kind, errs.Kind(tc.err), "%v", tc.err)
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "OTP is required", errs.Message(errs.NewValueIsRequiredError("OTP is required")))
	assert.Equal(t, "Invalid OTP", errs.Message(fmt.Errorf("complete: %w", errs.NewValueIsInvalidError("Invalid OTP"))))
	assert.Equal(t, "order not found", errs.Message(errs.NewObjectNotFoundError("order", "1")))
	assert.Equal(t, "disk full", errs.Message(errors.New("disk full")))
}
