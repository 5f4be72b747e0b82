package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/services"
)

// ResetRotationCommandHandler rebuilds the rotation ordering and cursor.
// Representatives are resequenced alphabetically, exclusions are lifted and
// the cursor returns to position zero, all in one transaction.
type ResetRotationCommandHandler struct {
	uowFactory RotationUoWFactory
}

// NewResetRotationCommandHandler creates a handler for rotation resets.
func NewResetRotationCommandHandler(uowFactory RotationUoWFactory) ResetRotationCommandHandler {
	return ResetRotationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reset command and returns a human-readable summary.
func (h ResetRotationCommandHandler) Handle(ctx context.Context, cmd ResetRotationCommand) (string, error) {
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

	if err = services.NewRotationPicker().Reorder(reps); err != nil {
		return "", err
	}

	for _, representative := range reps {
		if err = repRepo.Update(ctx, representative); err != nil {
			return "", err
		}
	}

	cursor, err := cursorRepo.Get(ctx)
	if err != nil {
		return "", err
	}

	cursor.Reset()

	if err = cursorRepo.Update(ctx, cursor); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return fmt.Sprintf("Rotation reset: %d representatives reordered alphabetically, cursor back to start",
		len(reps)), nil
}
