package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCurrencyIsRequired   = errors.New("currency is required")
	ErrLineItemsAreRequired = errors.New("at least one line item is required")
)

// CreateOrderCommand represents a request to register a new customer order.
// Encapsulates the order identity, currency and line items. The assigned
// representative is not part of the command: the rotation decides who
// serves the order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "USD", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	currency  string
	lineItems []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new customer order.
// Validates that the order ID is valid, the currency is not empty, and at
// least one line item is present. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	currency string,
	lineItems []order.LineItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCurrency(currency),
		orderCommand.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Currency returns the ISO 4217 currency code for the order amounts.
func (c CreateOrderCommand) Currency() string {
	return c.currency
}

// LineItems returns the order line items.
func (c CreateOrderCommand) LineItems() []order.LineItem {
	return c.lineItems
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCurrency(currency string) error {
	if currency == "" {
		return ErrCurrencyIsRequired
	}

	c.currency = currency
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []order.LineItem) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}

	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.lineItems = lineItems
	return nil
}
