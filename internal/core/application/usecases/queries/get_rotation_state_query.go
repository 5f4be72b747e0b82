// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetRotationStateQueryIsNotConstructed = errors.New(
	"GetRotationStateQuery must be created via NewGetRotationStateQuery constructor",
)

// GetRotationStateQuery retrieves the current round-robin rotation state.
// Returns the active representative ordering, the cursor position, and who
// is next in line, for display on the assignment dashboard.
//
// Example:
//
//	query := NewGetRotationStateQuery()
//	handler := NewGetRotationStateQueryHandler(db)
//
//	state, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve rotation state: %w", err)
//	}
//
//	if state.NextRep != nil {
//	    fmt.Printf("Next up: %s\n", state.NextRep.Name)
//	}
type GetRotationStateQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRotationStateQuery creates a query to retrieve the rotation state.
func NewGetRotationStateQuery() GetRotationStateQuery {
	return GetRotationStateQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRotationStateQueryIsNotConstructed if validation fails.
func (q GetRotationStateQuery) Validate() error {
	return q.guard.Validate(ErrGetRotationStateQueryIsNotConstructed)
}

// RotationRepResponse represents one representative slot in the rotation
// read model, in rotation order.
type RotationRepResponse struct {
	ID               kernel.UUID
	Name             string
	SequencePosition int
	Excluded         bool
}

// GetRotationStateQueryResponse is the rotation read model.
// Reps holds the active representatives in rotation order, including
// excluded ones so the UI can show who is sitting out. NextRep is the
// representative an order created right now would be assigned to, nil when
// everyone is excluded.
type GetRotationStateQueryResponse struct {
	CursorPosition int
	Reps           []RotationRepResponse
	NextRep        *RotationRepResponse
}
