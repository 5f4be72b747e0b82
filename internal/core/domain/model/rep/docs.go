// Package rep contains the Representative entity: a sales representative who
// participates in the round-robin rotation that distributes new orders.
//
// A representative carries three pieces of rotation state:
//   - active: whether the representative is part of the rotation ordering at all
//   - excluded: a temporary skip that keeps the representative's slot in the ordering
//   - sequencePosition: the deterministic position within the rotation ordering
//
// Exclusion and deactivation are deliberately distinct. An excluded
// representative keeps their numeric position and is skipped over as a no-op,
// so re-including them puts them back roughly where they were. A deactivated
// representative leaves the ordering entirely; reactivating appends them after
// the current maximum position.
package rep
