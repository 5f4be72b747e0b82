package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSetRepExclusionCommandIsNotConstructed = errors.New(
	"SetRepExclusionCommand must be created via NewSetRepExclusionCommand constructor",
)

// SetRepExclusionCommand toggles a representative's participation in the
// rotation. Exclusion is temporary: the representative keeps their sequence
// position and resumes it when included again.
//
// Example:
//
//	cmd, _ := NewSetRepExclusionCommand(repID, true)
//	handler := NewSetRepExclusionCommandHandler(uowFactory)
//	summary, err := handler.Handle(ctx, cmd)
type SetRepExclusionCommand struct { //nolint:recvcheck //using for validation
	repID    kernel.UUID
	excluded bool

	guard guard.ConstructorGuard
}

// NewSetRepExclusionCommand creates a command to exclude or include a
// representative. Validates the representative ID.
func NewSetRepExclusionCommand(repID kernel.UUID, excluded bool) (SetRepExclusionCommand, error) {
	cmd := SetRepExclusionCommand{
		excluded: excluded,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setRepID(repID); err != nil {
		return SetRepExclusionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetRepExclusionCommandIsNotConstructed if validation fails.
func (c SetRepExclusionCommand) Validate() error {
	return c.guard.Validate(ErrSetRepExclusionCommandIsNotConstructed)
}

// RepID returns the identifier of the representative.
func (c SetRepExclusionCommand) RepID() kernel.UUID {
	return c.repID
}

// Excluded reports whether the representative should sit out the rotation.
func (c SetRepExclusionCommand) Excluded() bool {
	return c.excluded
}

func (c *SetRepExclusionCommand) setRepID(repID kernel.UUID) error {
	if err := repID.Validate(); err != nil {
		return err
	}

	c.repID = repID
	return nil
}
