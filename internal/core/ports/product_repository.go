package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products and their
// stock counters.
//
// AdjustStock is the only write path to Product.CurrentStock anywhere in the
// system. It applies the delta as a single atomic counter update in the
// database, never read-modify-write in the application, so concurrent
// adjustments from different orders serialize at the counter.
type ProductRepository interface {
	// Add persists a new product to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// AdjustStock atomically adds delta (negative for deductions) to the
	// product's stock counter. When allowNegative is false and the deduction
	// would take the counter below zero, AdjustStock returns
	// product.ErrInsufficientStock and leaves the counter untouched.
	AdjustStock(ctx context.Context, id kernel.UUID, delta int, allowNegative bool) error

	// GetAllOversold retrieves products whose stock counter is negative.
	// Used by the oversell report.
	GetAllOversold(ctx context.Context) ([]*product.Product, error)
}
