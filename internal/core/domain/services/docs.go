// Package services contains stateless domain services for the fulfillment core.
//
// RotationPicker implements the round-robin selection over the rotation
// ordering: given the active representatives and the persisted cursor, it
// picks the next eligible representative deterministically. It holds no state
// of its own; the cursor is persisted and advanced by the caller within the
// same transaction as the order it assigns.
//
// InventoryLedger plans the stock side effect of an order's delivery edge and
// enforces idempotency through the order's stock-applied flag: a deduction is
// applied at most once, and a restore requires a matching prior deduction.
// The resulting adjustments are applied by the caller through the product
// repository's atomic counter update, inside the transition's transaction.
package services
