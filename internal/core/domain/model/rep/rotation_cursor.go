package rep

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrCursorIsNotConstructed is returned when using an improperly initialized RotationCursor.
var ErrCursorIsNotConstructed = fmt.Errorf("RotationCursor must be created via NewRotationCursor constructor")

// RotationCursor is the single process-wide pointer into the rotation
// ordering: the index of the next representative to receive an order.
//
// The cursor is persisted as one versioned row and mutated only through the
// rotation commands under an optimistic compare-and-swap, so the guarantee
// that no two orders are assigned from the same cursor value holds across
// concurrent requests and across server instances. The ordering itself is
// re-derived from the representatives inside the same transaction; a cursor
// that outlived a shrinking active set is clamped by the picker.
type RotationCursor struct {
	position int
	version  int

	guard guard.ConstructorGuard
}

// NewRotationCursor creates the initial cursor at position zero.
func NewRotationCursor() *RotationCursor {
	return &RotationCursor{guard: guard.NewConstructorGuard()}
}

// RestoreRotationCursor reconstructs the cursor from persistence.
// Used by repository implementations only.
func RestoreRotationCursor(position, version int) (*RotationCursor, error) {
	c := &RotationCursor{
		version: version,
		guard:   guard.NewConstructorGuard(),
	}
	if err := c.MoveTo(position); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate ensures the cursor was created through a constructor.
func (c *RotationCursor) Validate() error {
	if c == nil {
		return ErrCursorIsNotConstructed
	}
	return c.guard.Validate(ErrCursorIsNotConstructed)
}

// Position returns the index of the next representative to serve.
func (c *RotationCursor) Position() int {
	return c.position
}

// Version returns the optimistic-concurrency token as loaded from the store.
func (c *RotationCursor) Version() int {
	return c.version
}

// MoveTo points the cursor at a new position in the ordering.
func (c *RotationCursor) MoveTo(position int) error {
	if position < 0 {
		return errs.NewValueIsInvalidErrorWithCause("position is invalid",
			fmt.Errorf("%d is negative", position))
	}
	c.position = position
	return nil
}

// Reset returns the cursor to the start of the ordering.
func (c *RotationCursor) Reset() {
	c.position = 0
}
