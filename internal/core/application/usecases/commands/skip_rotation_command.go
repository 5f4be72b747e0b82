package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrSkipRotationCommandIsNotConstructed = errors.New(
	"SkipRotationCommand must be created via NewSkipRotationCommand constructor",
)

// SkipRotationCommand advances the rotation cursor by one slot without
// assigning an order. The representative whose turn it was keeps their place
// in the ordering and will be offered the turn again on the next full cycle.
//
// Example:
//
//	cmd := NewSkipRotationCommand()
//	handler := NewSkipRotationCommandHandler(uowFactory)
//	summary, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Skip failed: %v", err)
//	}
//	fmt.Println(summary)
type SkipRotationCommand struct {
	guard guard.ConstructorGuard
}

// NewSkipRotationCommand creates a new command to skip the current rotation turn.
func NewSkipRotationCommand() SkipRotationCommand {
	return SkipRotationCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrSkipRotationCommandIsNotConstructed if validation fails.
func (c *SkipRotationCommand) Validate() error {
	return c.guard.Validate(
		ErrSkipRotationCommandIsNotConstructed,
	)
}
