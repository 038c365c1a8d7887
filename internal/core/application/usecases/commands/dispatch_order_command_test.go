package commands_test

import (
	"testing"

	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDispatchOrderCommand(t *testing.T) {
	orderID, partnerID := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewDispatchOrderCommand(orderID, partnerID)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, partnerID, cmd.PartnerID())
}

func TestNewDispatchOrderCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewDispatchOrderCommand(kernel.UUID{}, kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var cmd commands.DispatchOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrDispatchOrderCommandIsNotConstructed)
}
