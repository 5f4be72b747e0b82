package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrResetRotationCommandIsNotConstructed = errors.New(
		"ResetRotationCommand must be created via NewResetRotationCommand constructor",
	)
	ErrResetIsNotConfirmed = errors.New("rotation reset requires explicit confirmation")
)

// ResetRotationCommand rebuilds the rotation from scratch: representatives
// are reordered alphabetically, every exclusion is lifted, and the cursor
// returns to the first slot. Destructive for the current rotation state, so
// the caller must confirm explicitly.
//
// Example:
//
//	cmd, err := NewResetRotationCommand(true)
//	if err != nil {
//	    return err // reset was not confirmed
//	}
//	summary, err := handler.Handle(ctx, cmd)
type ResetRotationCommand struct {
	guard guard.ConstructorGuard
}

// NewResetRotationCommand creates a command to reset the rotation.
// Returns ErrResetIsNotConfirmed unless the caller passes confirmed=true.
func NewResetRotationCommand(confirmed bool) (ResetRotationCommand, error) {
	if !confirmed {
		return ResetRotationCommand{}, ErrResetIsNotConfirmed
	}

	return ResetRotationCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResetRotationCommandIsNotConstructed if validation fails.
func (c *ResetRotationCommand) Validate() error {
	return c.guard.Validate(
		ErrResetRotationCommandIsNotConstructed,
	)
}
