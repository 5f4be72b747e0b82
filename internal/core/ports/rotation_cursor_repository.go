package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/rep"
)

// RotationCursorRepository defines the persistence contract for the single
// rotation cursor row.
type RotationCursorRepository interface {
	// Get retrieves the cursor, creating the singleton row at position zero
	// on first use.
	Get(ctx context.Context) (*rep.RotationCursor, error)

	// Update persists the cursor using its version as a compare-and-swap
	// precondition. When a concurrent rotation operation committed first,
	// Update returns a ConcurrencyConflictError; the caller's transaction
	// rolls back and no two orders are ever assigned from the same cursor
	// value.
	Update(ctx context.Context, cursor *rep.RotationCursor) error
}
