package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand_Success(t *testing.T) {
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()

	cmd, err := commands.NewTransitionOrderCommand(orderID, order.Confirmed, userID, "", nil)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.Confirmed, cmd.NewStatus())
	assert.Equal(t, userID, cmd.ActingUserID())
	assert.Empty(t, cmd.Reason())
	assert.Nil(t, cmd.AgentID())
}

func TestNewTransitionOrderCommand_WithAgent(t *testing.T) {
	agentID := kernel.NewUUID()

	cmd, err := commands.NewTransitionOrderCommand(
		kernel.NewUUID(), order.Dispatched, kernel.NewUUID(), "", &agentID)

	require.NoError(t, err)
	require.NotNil(t, cmd.AgentID())
	assert.Equal(t, agentID, *cmd.AgentID())
}

func TestNewTransitionOrderCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(
		kernel.NewUUID(), order.Unknown, kernel.NewUUID(), "", nil)

	require.Error(t, err)
}

func TestNewTransitionOrderCommand_InvalidActingUser(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(
		kernel.NewUUID(), order.Confirmed, kernel.UUID{}, "", nil)

	require.Error(t, err)
}

func TestTransitionOrderCommand_ValidateNotConstructed(t *testing.T) {
	cmd := commands.TransitionOrderCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrTransitionOrderCommandIsNotConstructed)
}
