package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/services"
)

// SkipRotationCommandHandler advances the rotation cursor by one slot.
// Unlike order intake, skipping moves the cursor positionally: it does not
// scan for the next eligible representative, it simply passes the turn.
// Fails fast when no active representatives exist, so a skip never leaves
// the cursor pointing into an empty set.
type SkipRotationCommandHandler struct {
	uowFactory RotationUoWFactory
}

// NewSkipRotationCommandHandler creates a handler for rotation skips.
func NewSkipRotationCommandHandler(uowFactory RotationUoWFactory) SkipRotationCommandHandler {
	return SkipRotationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the skip command and returns a human-readable summary of
// the new rotation state for display. Returns services.ErrNoEligibleRep when
// the active set is empty.
func (h SkipRotationCommandHandler) Handle(ctx context.Context, cmd SkipRotationCommand) (string, error) {
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
	cursorRepo := uow.RotationCursorRepository()

	reps, err := repRepo.GetAllActiveOrdered(ctx)
	if err != nil {
		return "", err
	}

	cursor, err := cursorRepo.Get(ctx)
	if err != nil {
		return "", err
	}

	picker := services.NewRotationPicker()
	newPosition, err := picker.Skip(reps, cursor.Position())
	if err != nil {
		return "", err
	}

	if err = cursor.MoveTo(newPosition); err != nil {
		return "", err
	}

	if err = cursorRepo.Update(ctx, cursor); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	summary := "Skipped one rotation turn"
	if upNext, _, nextErr := picker.Next(reps, newPosition); nextErr == nil {
		summary = fmt.Sprintf("Skipped one rotation turn; next in line is %s", upNext.Name())
	}

	return summary, nil
}
