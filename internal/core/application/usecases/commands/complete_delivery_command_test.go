package commands_test

import (
	"testing"

	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteDeliveryCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, "012345")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "012345", cmd.SubmittedCode().String())
}

func TestNewCompleteDeliveryCommand_CodeFormat(t *testing.T) {
	testCases := []struct {
		code     string
		sentinel error
		message  string
	}{
		{"", errs.ErrValueIsRequired, "OTP is required"},
		{"12345", errs.ErrValueIsInvalid, "Invalid OTP"},
		{"1234567", errs.ErrValueIsInvalid, "Invalid OTP"},
		{"12a456", errs.ErrValueIsInvalid, "Invalid OTP"},
		{" 12345", errs.ErrValueIsInvalid, "Invalid OTP"},
		{"１２３４５６", errs.ErrValueIsInvalid, "Invalid OTP"},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			_, err := commands.NewCompleteDeliveryCommand(kernel.NewUUID(), tc.code)

			require.ErrorIs(t, err, tc.sentinel)
			assert.Equal(t, tc.message, errs.Message(err))
		})
	}
}

func TestNewCompleteDeliveryCommand_CodeIsCheckedFirst(t *testing.T) {
	_, err := commands.NewCompleteDeliveryCommand(kernel.UUID{}, "abc")

	assert.Equal(t, "Invalid OTP", errs.Message(err))
}
