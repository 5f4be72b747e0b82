package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

var (
	// ErrDoubleDeduction is returned when a deduction is requested for an
	// order whose stock effect is already applied.
	ErrDoubleDeduction = errors.New("stock already deducted for this order")

	// ErrInvalidReversal is returned when a restore is requested for an order
	// whose stock was never deducted. Restoring in that state would silently
	// inflate stock.
	ErrInvalidReversal = errors.New("stock was never deducted for this order")
)

// StockAdjustment is one product counter change planned by the ledger.
// Delta is negative for deductions and positive for restores.
type StockAdjustment struct {
	ProductID kernel.UUID
	Delta     int
}

// InventoryLedger plans the stock impact of an order's line items with strict
// idempotency: each order's effect is applied at most once in each direction,
// tracked explicitly through the order's stock-applied flag rather than
// inferred from status values.
//
// The ledger only plans adjustments; the caller applies them through the
// product repository's atomic counter update within the same transaction as
// the status change, so the pair commits or rolls back as one unit.
type InventoryLedger struct {
	// allowOversell permits deductions below zero. Oversell is a business
	// reality surfaced by reporting; blocking it is a policy choice, so the
	// flag is configuration, not a constant.
	allowOversell bool
}

// NewInventoryLedger creates a ledger with the given oversell policy.
func NewInventoryLedger(allowOversell bool) InventoryLedger {
	return InventoryLedger{allowOversell: allowOversell}
}

// AllowOversell reports whether deductions may take a product's stock negative.
func (l InventoryLedger) AllowOversell() bool {
	return l.allowOversell
}

// Plan translates a transition's inventory effect into stock adjustments.
// EffectNone plans nothing; EffectDeduct and EffectRestore delegate to
// Deduct and Restore respectively.
func (l InventoryLedger) Plan(o *order.Order, effect order.InventoryEffect) ([]StockAdjustment, error) {
	switch effect {
	case order.EffectDeduct:
		return l.Deduct(o)
	case order.EffectRestore:
		return l.Restore(o)
	case order.EffectNone:
		return nil, nil
	default:
		return nil, nil
	}
}

// Deduct marks the order's stock effect as applied and plans one negative
// adjustment per line item. Returns ErrDoubleDeduction if the effect is
// already applied; it never silently deducts twice.
func (l InventoryLedger) Deduct(o *order.Order) ([]StockAdjustment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.ApplyStockEffect(); err != nil {
		return nil, ErrDoubleDeduction
	}

	return l.adjustments(o, -1), nil
}

// Restore marks the order's stock effect as reverted and plans one positive
// adjustment per line item. Returns ErrInvalidReversal if no matching
// deduction was applied before.
func (l InventoryLedger) Restore(o *order.Order) ([]StockAdjustment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.RevertStockEffect(); err != nil {
		return nil, ErrInvalidReversal
	}

	return l.adjustments(o, 1), nil
}

func (l InventoryLedger) adjustments(o *order.Order, sign int) []StockAdjustment {
	items := o.LineItems()
	adjustments := make([]StockAdjustment, 0, len(items))
	for _, item := range items {
		adjustments = append(adjustments, StockAdjustment{
			ProductID: item.ProductID(),
			Delta:     sign * item.Quantity(),
		})
	}
	return adjustments
}
