package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to move an order to a new
// fulfillment status. Carries the acting user for the notification trail and
// an optional reason, which is mandatory when the order leaves a terminal
// status. An optional agent can be attached in the same request.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.Delivered, userID, "", nil)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, ledger, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	newStatus    order.Status
	actingUserID kernel.UUID
	reason       string
	agentID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to change an order's status.
// Validates the order ID, the target status and the acting user ID.
// The reason may be empty for forward transitions; the aggregate rejects
// an empty reason for reversals out of a terminal status.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	actingUserID kernel.UUID,
	reason string,
	agentID *kernel.UUID,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
		cmd.setActingUserID(actingUserID),
		cmd.setAgentID(agentID),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being transitioned.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the target fulfillment status.
func (c TransitionOrderCommand) NewStatus() order.Status {
	return c.newStatus
}

// ActingUserID returns the identifier of the user performing the transition.
func (c TransitionOrderCommand) ActingUserID() kernel.UUID {
	return c.actingUserID
}

// Reason returns the optional human-readable reason for the transition.
func (c TransitionOrderCommand) Reason() string {
	return c.reason
}

// AgentID returns the optional agent to attach to the order, or nil.
func (c TransitionOrderCommand) AgentID() *kernel.UUID {
	return c.agentID
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *TransitionOrderCommand) setActingUserID(actingUserID kernel.UUID) error {
	if err := actingUserID.Validate(); err != nil {
		return err
	}

	c.actingUserID = actingUserID
	return nil
}

func (c *TransitionOrderCommand) setAgentID(agentID *kernel.UUID) error {
	if agentID == nil {
		return nil
	}

	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
