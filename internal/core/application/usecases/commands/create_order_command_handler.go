package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Picks the next eligible representative from the rotation, advances the
// cursor, and persists the new order in "new" status. Cursor advance and
// order creation commit atomically, so concurrent intakes either serialize
// or one of them retries on a version conflict.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	orderID := kernel.NewUUID()
//	cmd, _ := NewCreateOrderCommand(orderID, "USD", items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now assigned to a representative and awaiting confirmation
type CreateOrderCommandHandler struct {
	uowFactory OrderCreationUoWFactory
	notifier   ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires an OrderCreationUoWFactory for transactional persistence and a
// Notifier for the post-commit assignment notification.
func NewCreateOrderCommandHandler(
	uowFactory OrderCreationUoWFactory,
	notifier ports.Notifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order creation command.
// Reads the rotation ordering and cursor, picks the next eligible
// representative, advances the cursor past the served slot and creates the
// order assigned to that representative. Returns services.ErrNoEligibleRep
// when every active representative is excluded, and a concurrency conflict
// error when another intake advanced the cursor first.
// The assignment notification is sent only after the transaction commits.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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
	cursorRepo := uow.RotationCursorRepository()
	orderRepo := uow.OrderRepository()

	reps, err := repRepo.GetAllActiveOrdered(ctx)
	if err != nil {
		return err
	}

	cursor, err := cursorRepo.Get(ctx)
	if err != nil {
		return err
	}

	assignee, nextPosition, err := services.NewRotationPicker().Next(reps, cursor.Position())
	if err != nil {
		return err
	}

	if err = cursor.MoveTo(nextPosition); err != nil {
		return err
	}

	if err = cursorRepo.Update(ctx, cursor); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), assignee.ID(), cmd.Currency(), cmd.LineItems())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyRep(ctx, assignee.ID(),
		fmt.Sprintf("Order #%d has been assigned to you", newOrder.Number()))

	return nil
}
