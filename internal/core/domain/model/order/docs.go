// Package order provides domain entities and business logic for the order
// lifecycle in the fulfillment core.
//
// The package centers on the Order aggregate root, which controls:
//   - the status state machine (see Status and its transition table)
//   - first-write-wins status timestamps for the audit trail
//   - the stock-effect flag that keeps inventory deductions idempotent
//   - immutable line items and the creation-time total amount
//
// Statuses Delivered and Cancelled are terminal in normal operation but can be
// left through an explicit operator reversal carrying a reason, which is
// recorded as an audit note on the order. The inventory side effect of a
// transition is derived from the edge (entering or leaving Delivered) and
// reported to the caller, which applies it through the inventory ledger within
// the same transaction as the status change.
package order
