package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSetRepActivationCommandIsNotConstructed = errors.New(
	"SetRepActivationCommand must be created via NewSetRepActivationCommand constructor",
)

// SetRepActivationCommand deactivates a representative who left the team or
// reactivates a returning one. Deactivation removes them from the rotation
// ordering entirely; reactivation appends them at the end, it does not
// restore their old slot.
type SetRepActivationCommand struct { //nolint:recvcheck //using for validation
	repID  kernel.UUID
	active bool

	guard guard.ConstructorGuard
}

// NewSetRepActivationCommand creates a command to change a representative's
// activation state. Validates the representative ID.
func NewSetRepActivationCommand(repID kernel.UUID, active bool) (SetRepActivationCommand, error) {
	cmd := SetRepActivationCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setRepID(repID); err != nil {
		return SetRepActivationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetRepActivationCommandIsNotConstructed if validation fails.
func (c SetRepActivationCommand) Validate() error {
	return c.guard.Validate(ErrSetRepActivationCommandIsNotConstructed)
}

// RepID returns the identifier of the representative.
func (c SetRepActivationCommand) RepID() kernel.UUID {
	return c.repID
}

// Active reports whether the representative should be active.
func (c SetRepActivationCommand) Active() bool {
	return c.active
}

func (c *SetRepActivationCommand) setRepID(repID kernel.UUID) error {
	if err := repID.Validate(); err != nil {
		return err
	}

	c.repID = repID
	return nil
}
