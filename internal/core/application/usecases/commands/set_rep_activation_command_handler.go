package commands

import (
	"context"
)

// SetRepActivationCommandHandler changes a representative's activation state.
// Deactivation also clears any exclusion so a later reactivation starts
// clean; reactivation appends the representative to the tail of the rotation
// ordering.
type SetRepActivationCommandHandler struct {
	uowFactory RepUoWFactory
}

// NewSetRepActivationCommandHandler creates a handler for activation changes.
func NewSetRepActivationCommandHandler(uowFactory RepUoWFactory) SetRepActivationCommandHandler {
	return SetRepActivationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation command.
// Returns an object-not-found error when the representative does not exist.
func (h SetRepActivationCommandHandler) Handle(ctx context.Context, cmd SetRepActivationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repRepo := uow.RepRepository()

	representative, err := repRepo.Get(ctx, cmd.RepID())
	if err != nil {
		return err
	}

	if cmd.Active() {
		reps, err := repRepo.GetAllActiveOrdered(ctx)
		if err != nil {
			return err
		}

		if err = representative.Activate(nextSequencePosition(reps)); err != nil {
			return err
		}
	} else {
		representative.Deactivate()
	}

	if err = repRepo.Update(ctx, representative); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
