package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAddRepresentativeCommandIsNotConstructed = errors.New(
		"AddRepresentativeCommand must be created via NewAddRepresentativeCommand constructor",
	)
	ErrRepNameIsRequired = errors.New("representative name is required")
)

// AddRepresentativeCommand registers a new sales representative.
// New representatives join the rotation at the end of the current ordering.
type AddRepresentativeCommand struct { //nolint:recvcheck //using for validation
	repID kernel.UUID
	name  string

	guard guard.ConstructorGuard
}

// NewAddRepresentativeCommand creates a command to register a representative.
// Validates that the ID is valid and the name is not empty.
func NewAddRepresentativeCommand(repID kernel.UUID, name string) (AddRepresentativeCommand, error) {
	cmd := AddRepresentativeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRepID(repID),
		cmd.setName(name),
	); err != nil {
		return AddRepresentativeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddRepresentativeCommandIsNotConstructed if validation fails.
func (c AddRepresentativeCommand) Validate() error {
	return c.guard.Validate(ErrAddRepresentativeCommandIsNotConstructed)
}

// RepID returns the identifier for the new representative.
func (c AddRepresentativeCommand) RepID() kernel.UUID {
	return c.repID
}

// Name returns the representative's display name.
func (c AddRepresentativeCommand) Name() string {
	return c.name
}

func (c *AddRepresentativeCommand) setRepID(repID kernel.UUID) error {
	if err := repID.Validate(); err != nil {
		return err
	}

	c.repID = repID
	return nil
}

func (c *AddRepresentativeCommand) setName(name string) error {
	if name == "" {
		return ErrRepNameIsRequired
	}

	c.name = name
	return nil
}
