package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// TransitionOrderCommandHandler handles order status transitions.
// Applies the status machine rules on the aggregate, plans the inventory
// effect of crossing the delivered boundary, and adjusts product stock in
// the same transaction as the status write. The optimistic version check on
// the order row guarantees that two concurrent transitions of the same order
// cannot both commit, so stock is never deducted twice for one delivery.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, ledger, notifier)
//	cmd, _ := NewTransitionOrderCommand(orderID, order.Confirmed, userID, "", nil)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrValueIsInvalid):
//	    log.Println("Transition rejected by status machine")
//	case errors.Is(err, product.ErrInsufficientStock):
//	    log.Println("Not enough stock to deliver")
//	case err != nil:
//	    log.Printf("Transition failed: %v", err)
//	}
type TransitionOrderCommandHandler struct {
	uowFactory TransitionUoWFactory
	ledger     services.InventoryLedger
	notifier   ports.Notifier
}

// NewTransitionOrderCommandHandler creates a handler for status transitions.
// Requires a TransitionUoWFactory, the inventory ledger carrying the oversell
// policy, and a Notifier for the post-commit status notification.
func NewTransitionOrderCommandHandler(
	uowFactory TransitionUoWFactory,
	ledger services.InventoryLedger,
	notifier ports.Notifier,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		notifier:   notifier,
	}
}

// Handle processes the transition command.
// Loads the order, asks the aggregate for the transition and its inventory
// effect, applies every planned stock adjustment, and persists the order
// with a compare-and-swap on its version. Restores are always allowed to
// raise the stock counter; deductions below zero are rejected unless the
// oversell policy permits them.
// The notification to the assigned representative is sent only after commit.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	effect, err := aggregate.TransitionTo(cmd.NewStatus(), cmd.Reason(), time.Now().UTC())
	if err != nil {
		return err
	}

	if cmd.AgentID() != nil {
		if err = aggregate.AssignAgent(*cmd.AgentID()); err != nil {
			return err
		}
	}

	adjustments, err := h.ledger.Plan(aggregate, effect)
	if err != nil {
		return err
	}

	for _, adjustment := range adjustments {
		allowNegative := adjustment.Delta > 0 || h.ledger.AllowOversell()
		if err = productRepo.AdjustStock(ctx, adjustment.ProductID, adjustment.Delta, allowNegative); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyRep(ctx, aggregate.AssignedTo(),
		fmt.Sprintf("Order #%d is now %s", aggregate.Number(), aggregate.Status()))

	return nil
}
