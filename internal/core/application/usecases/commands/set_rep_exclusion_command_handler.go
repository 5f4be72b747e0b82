package commands

import (
	"context"
	"fmt"
)

// SetRepExclusionCommandHandler toggles a representative's rotation exclusion.
// The rotation ordering is untouched: an excluded representative keeps their
// slot and the picker scans over it until they are included again.
type SetRepExclusionCommandHandler struct {
	uowFactory RepUoWFactory
}

// NewSetRepExclusionCommandHandler creates a handler for exclusion toggles.
func NewSetRepExclusionCommandHandler(uowFactory RepUoWFactory) SetRepExclusionCommandHandler {
	return SetRepExclusionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the exclusion command and returns a human-readable summary.
// Returns an object-not-found error when the representative does not exist.
func (h SetRepExclusionCommandHandler) Handle(ctx context.Context, cmd SetRepExclusionCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repRepo := uow.RepRepository()

	representative, err := repRepo.Get(ctx, cmd.RepID())
	if err != nil {
		return "", err
	}

	if cmd.Excluded() {
		representative.Exclude()
	} else {
		representative.Include()
	}

	if err = repRepo.Update(ctx, representative); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	if cmd.Excluded() {
		return fmt.Sprintf("%s is temporarily excluded from the rotation", representative.Name()), nil
	}
	return fmt.Sprintf("%s is back in the rotation at position %d",
		representative.Name(), representative.SequencePosition()), nil
}
