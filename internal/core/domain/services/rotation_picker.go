package services

import (
	"errors"
	"sort"

	"fulfillment/internal/core/domain/model/rep"
)

// ErrNoEligibleRep is returned when the rotation has no representative to
// hand an order to: the active set is empty or every member is excluded.
// The caller must reject order creation in that case, never assign silently.
var ErrNoEligibleRep = errors.New("no active sales representatives available")

// RotationPicker is a domain service implementing round-robin selection over
// the rotation ordering of active representatives.
//
// The ordering contains every active representative, excluded ones included:
// an excluded representative keeps their slot and is skipped as a no-op, so
// re-including them puts them back where they were. The cursor indexes into
// this ordering and wraps at the end.
//
// RotationPicker is pure: it never touches persistence. Callers load the
// active set and the cursor inside a transaction, call the picker, and persist
// the advanced cursor under the same transactional boundary so two concurrent
// calls can never serve the same cursor value.
type RotationPicker struct{}

// NewRotationPicker creates a new RotationPicker instance.
func NewRotationPicker() RotationPicker {
	return RotationPicker{}
}

// Next picks the representative owed the next order and returns the advanced
// cursor position.
//
// The ordering is normalized to (sequencePosition, id) before selection so
// selection stays deterministic even when two representatives share a
// position. The scan starts at the cursor (clamped into range in case the
// active set shrank since the cursor was written), skips excluded slots, and
// leaves the cursor one past the slot actually served.
//
// Returns ErrNoEligibleRep when the ordering is empty or fully excluded.
func (p RotationPicker) Next(reps []*rep.Representative, cursor int) (*rep.Representative, int, error) {
	ordered, err := p.normalize(reps)
	if err != nil {
		return nil, 0, err
	}
	if len(ordered) == 0 {
		return nil, 0, ErrNoEligibleRep
	}

	start := clampCursor(cursor, len(ordered))
	for i := range ordered {
		idx := (start + i) % len(ordered)
		if ordered[idx].IsEligible() {
			return ordered[idx], (idx + 1) % len(ordered), nil
		}
	}

	return nil, 0, ErrNoEligibleRep
}

// Skip advances the cursor by one slot without producing an assignment.
// The slot passed over may belong to an excluded representative; skipping is
// positional, not eligibility-aware. Fails fast with ErrNoEligibleRep on an
// empty ordering instead of spinning.
func (p RotationPicker) Skip(reps []*rep.Representative, cursor int) (int, error) {
	ordered, err := p.normalize(reps)
	if err != nil {
		return 0, err
	}
	if len(ordered) == 0 {
		return 0, ErrNoEligibleRep
	}

	return (clampCursor(cursor, len(ordered)) + 1) % len(ordered), nil
}

// Reorder recomputes sequence positions alphabetically by name (ties broken
// by id) and clears all exclusions. Used by the explicit rotation reset; the
// caller persists the mutated representatives and resets the cursor to zero.
func (p RotationPicker) Reorder(reps []*rep.Representative) error {
	for _, r := range reps {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	sorted := make([]*rep.Representative, len(reps))
	copy(sorted, reps)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Name() != sorted[j].Name() {
			return sorted[i].Name() < sorted[j].Name()
		}
		return sorted[i].ID().String() < sorted[j].ID().String()
	})

	for i, r := range sorted {
		r.Include()
		if err := r.Reposition(i); err != nil {
			return err
		}
	}

	return nil
}

// normalize validates the slice and returns it sorted by
// (sequencePosition, id) without mutating the caller's slice.
func (p RotationPicker) normalize(reps []*rep.Representative) ([]*rep.Representative, error) {
	for _, r := range reps {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	ordered := make([]*rep.Representative, len(reps))
	copy(ordered, reps)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].SequencePosition() != ordered[j].SequencePosition() {
			return ordered[i].SequencePosition() < ordered[j].SequencePosition()
		}
		return ordered[i].ID().String() < ordered[j].ID().String()
	})

	return ordered, nil
}

// clampCursor brings a persisted cursor back into range after the active set
// shrank. Negative values, which should never be persisted, clamp to zero.
func clampCursor(cursor, length int) int {
	if cursor < 0 {
		return 0
	}
	return cursor % length
}
