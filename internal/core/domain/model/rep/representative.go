package rep

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a representative without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRepIsNotConstructed is returned when using an improperly initialized Representative.
	ErrRepIsNotConstructed = errors.New("Representative must be created via NewRepresentative constructor")
)

// Representative is a sales representative eligible to own orders.
// It is an aggregate root that manages the representative's participation in
// the round-robin rotation.
//
// Business rules:
//   - Must have a valid UUID and a non-empty name
//   - A new representative is active, not excluded, and placed at the supplied
//     sequence position (the caller appends after the current maximum)
//   - Excluding keeps the sequence position; the rotation skips the slot
//   - Deactivating removes the representative from the ordering; reactivating
//     re-appends at a new position rather than restoring the old one
//   - Representatives are never hard-deleted while orders reference them
type Representative struct {
	id kernel.UUID
	// name is used for display and for the alphabetical rotation reset
	name string
	// active marks participation in the rotation ordering
	active bool
	// excluded marks a temporary skip that keeps the rotation slot
	excluded bool
	// sequencePosition orders the rotation; ties are broken by id
	sequencePosition int

	guard guard.ConstructorGuard
}

// NewRepresentative creates an active, non-excluded representative at the given
// rotation position. This is the only way to create a valid Representative.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - sequencePosition: Position in the rotation ordering (must not be negative)
//
// Returns the representative, or a validation error if any parameter is invalid.
func NewRepresentative(id kernel.UUID, name string, sequencePosition int) (*Representative, error) {
	r := &Representative{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setSequencePosition(sequencePosition),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRepresentative reconstructs a representative from persistence with its
// full rotation state. Used by repository implementations only.
func RestoreRepresentative(
	id kernel.UUID, name string, active, excluded bool, sequencePosition int,
) (*Representative, error) {
	r := &Representative{
		active:   active,
		excluded: excluded,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setSequencePosition(sequencePosition),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Representative was constructed through NewRepresentative
// or RestoreRepresentative.
func (r *Representative) Validate() error {
	if r == nil {
		return ErrRepIsNotConstructed
	}
	return r.guard.Validate(ErrRepIsNotConstructed)
}

// IsEqual compares two representatives by their unique identifiers.
func (r *Representative) IsEqual(other *Representative) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the representative's unique identifier.
func (r *Representative) ID() kernel.UUID {
	return r.id
}

// Name returns the representative's display name.
func (r *Representative) Name() string {
	return r.name
}

// IsActive reports whether the representative participates in the rotation ordering.
func (r *Representative) IsActive() bool {
	return r.active
}

// IsExcluded reports whether the representative is temporarily skipped.
func (r *Representative) IsExcluded() bool {
	return r.excluded
}

// IsEligible reports whether the rotation may hand an order to this representative.
func (r *Representative) IsEligible() bool {
	return r.active && !r.excluded
}

// SequencePosition returns the representative's position in the rotation ordering.
func (r *Representative) SequencePosition() int {
	return r.sequencePosition
}

// Exclude temporarily removes the representative from rotation eligibility.
// The sequence position is kept so the slot is skipped as a no-op.
func (r *Representative) Exclude() {
	r.excluded = true
}

// Include puts an excluded representative back into rotation eligibility at
// their retained sequence position.
func (r *Representative) Include() {
	r.excluded = false
}

// Deactivate removes the representative from the rotation ordering entirely.
// Any exclusion flag is cleared; it is meaningless outside the ordering.
func (r *Representative) Deactivate() {
	r.active = false
	r.excluded = false
}

// Activate returns a deactivated representative to the rotation ordering,
// re-appending them at the supplied position (after the current maximum).
func (r *Representative) Activate(sequencePosition int) error {
	if err := r.setSequencePosition(sequencePosition); err != nil {
		return err
	}
	r.active = true
	return nil
}

// Reposition moves the representative to a new sequence position. Used by the
// rotation reset, which reorders all active representatives alphabetically.
func (r *Representative) Reposition(sequencePosition int) error {
	return r.setSequencePosition(sequencePosition)
}

func (r *Representative) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Representative) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Representative) setSequencePosition(sequencePosition int) error {
	if sequencePosition < 0 {
		return errs.NewValueIsInvalidError("sequencePosition")
	}
	r.sequencePosition = sequencePosition
	return nil
}
