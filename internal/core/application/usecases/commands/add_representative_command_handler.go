package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/rep"
)

// AddRepresentativeCommandHandler registers new sales representatives.
// The newcomer is appended after the last slot of the current ordering so
// existing representatives keep their relative rotation order.
type AddRepresentativeCommandHandler struct {
	uowFactory RepUoWFactory
}

// NewAddRepresentativeCommandHandler creates a handler for representative registration.
func NewAddRepresentativeCommandHandler(uowFactory RepUoWFactory) AddRepresentativeCommandHandler {
	return AddRepresentativeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h AddRepresentativeCommandHandler) Handle(ctx context.Context, cmd AddRepresentativeCommand) error {
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

	reps, err := repRepo.GetAllActiveOrdered(ctx)
	if err != nil {
		return err
	}

	representative, err := rep.NewRepresentative(cmd.RepID(), cmd.Name(), nextSequencePosition(reps))
	if err != nil {
		return err
	}

	if err = repRepo.Add(ctx, representative); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// nextSequencePosition returns the slot after the current tail of the ordering.
func nextSequencePosition(reps []*rep.Representative) int {
	next := 0
	for _, representative := range reps {
		if representative.SequencePosition() >= next {
			next = representative.SequencePosition() + 1
		}
	}
	return next
}
