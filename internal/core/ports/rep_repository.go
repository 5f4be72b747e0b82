// Package ports defines repository and outbound interfaces for the
// fulfillment core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rep"
)

// RepRepository defines the persistence contract for representative aggregates.
// It is also the registry the rotation reads: GetAllActiveOrdered returns the
// rotation ordering the cursor indexes into.
type RepRepository interface {
	// Add persists a new representative aggregate to storage.
	Add(ctx context.Context, aggregate *rep.Representative) error

	// Update persists changes to an existing representative aggregate.
	Update(ctx context.Context, aggregate *rep.Representative) error

	// Get retrieves a representative aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rep.Representative, error)

	// GetAllActiveOrdered retrieves every active representative ordered by
	// (sequencePosition, id). Excluded representatives are included: they
	// keep their slot in the rotation ordering and are skipped by the picker,
	// not removed from the ordering.
	GetAllActiveOrdered(ctx context.Context) ([]*rep.Representative, error)
}
