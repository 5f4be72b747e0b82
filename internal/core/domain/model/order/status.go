package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table so the
// allowed moves live in one place instead of being scattered across callers.
//
// State transitions:
//
//	New ──> Confirmed ──> Dispatched ──> Delivered
//	 │          │             │
//	 └──────────┴─────────────┴──> Cancelled / Postponed
//
// Postponed resumes to any forward status. Delivered and Cancelled are
// terminal in normal operation; leaving either requires an explicit
// operator reversal carrying a reason (see Order.TransitionTo).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned at order creation.
	New

	// Confirmed indicates the order has been confirmed with the customer.
	Confirmed

	// Dispatched indicates the order has been handed to a delivery agent.
	Dispatched

	// Delivered indicates the order reached the customer. Entering this
	// status deducts stock; leaving it restores stock.
	Delivered

	// Cancelled indicates the order was called off.
	Cancelled

	// Postponed indicates the order is on hold and may resume later.
	Postponed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		New:        "New",
		Confirmed:  "Confirmed",
		Dispatched: "Dispatched",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Postponed:  "Postponed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "New",
		Confirmed:  "Confirmed",
		Dispatched: "Dispatched",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Postponed:  "Postponed",
	}
}

// transitionTable holds the allowed-from → allowed-to pairs for normal
// operation. Terminal statuses have no entries here; leaving them is only
// possible through a reason-carrying reversal, which Order.TransitionTo
// permits to any other valid status.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		New:        {Confirmed, Dispatched, Delivered, Cancelled, Postponed},
		Confirmed:  {Dispatched, Delivered, Cancelled, Postponed},
		Dispatched: {Delivered, Cancelled, Postponed},
		Postponed:  {Confirmed, Dispatched, Delivered, Cancelled},
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, Confirmed, Dispatched, Delivered, Cancelled, Postponed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as used on the wire and in persistence.
// Returns an error for unknown names, including "Unknown" itself.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// IsTerminal reports whether the status ends the normal lifecycle.
// Terminal statuses can only be left through an explicit reversal.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition table allows moving from s
// to newStatus in normal operation. Reversals out of terminal statuses are
// handled separately and are never allowed by this method.
func (s Status) CanTransitionTo(newStatus Status) bool {
	for _, allowed := range transitionTable()[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}
