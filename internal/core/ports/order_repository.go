package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage. The store assigns the
	// monotonic display number, which Add writes back onto the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using the
	// aggregate's version as a compare-and-swap precondition. When a
	// concurrent writer committed first, Update returns a
	// ConcurrencyConflictError and leaves the row untouched; the caller's
	// transaction rolls back so neither the status change nor any stock
	// adjustment survives.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its line items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
