package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLineItemsAreRequired is returned when attempting to create an order without line items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("lineItems")

	// ErrReasonIsRequired is returned when a reversal out of a terminal status
	// is requested without an operator reason.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")

	// ErrStockAlreadyApplied is returned when a deduction is requested for an
	// order whose stock effect is already applied.
	ErrStockAlreadyApplied = errors.New("stock effect already applied for this order")

	// ErrStockNeverApplied is returned when a restore is requested for an
	// order whose stock effect was never applied. Silently inflating stock is
	// never acceptable.
	ErrStockNeverApplied = errors.New("stock effect was never applied for this order")

	// ErrNumberAlreadyAssigned is returned when the display number is set twice.
	ErrNumberAlreadyAssigned = errors.New("order number already assigned")
)

// InventoryEffect describes the stock side effect a status transition carries.
// Effects are derived strictly from the transition edge, never from the
// order's absolute status, so re-sending the same request cannot double-apply.
type InventoryEffect int

const (
	// EffectNone means the transition does not touch stock.
	EffectNone InventoryEffect = iota
	// EffectDeduct means the transition entered Delivered and stock must be deducted.
	EffectDeduct
	// EffectRestore means the transition left Delivered and stock must be restored.
	EffectRestore
)

// Order represents a customer order in the fulfillment core. It is the
// aggregate root that manages the order lifecycle from creation through
// delivery, including the stock-effect bookkeeping tied to that lifecycle.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning representative
//   - Must have at least one line item; items are immutable after creation
//   - TotalAmount is the sum of item price×quantity at creation time, immutable
//   - Status transitions follow the transition table in status.go
//   - Each status timestamp is set at most once (first write wins)
//   - The stock-applied flag flips strictly deduct→restore→deduct
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-facing order number, unique and monotonically
	// assigned by the store; zero until persisted
	number int64

	// assignedToID is the owning representative, set once at creation
	assignedToID kernel.UUID

	// agentID is the delivery agent (nil if none); mutable
	agentID *kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// lineItems are the immutable product positions
	lineItems []LineItem

	// currency is the ISO 4217 code the amounts are denominated in
	currency string

	// totalAmount is the immutable sum of item subtotals at creation time
	totalAmount decimal.Decimal

	// status timestamps, each set at most once (first write wins)
	confirmedAt  *time.Time
	dispatchedAt *time.Time
	deliveredAt  *time.Time
	cancelledAt  *time.Time

	// stockApplied records whether this order's stock effect is currently applied
	stockApplied bool

	// auditNotes collects operator reasons recorded on transitions
	auditNotes []string

	// version is the optimistic-concurrency token as loaded from the store
	version int

	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in New status owned by the given
// representative. This is the only way to create a valid new Order.
//
// The total amount is computed from the line items once, here, and never
// recomputed afterwards.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - assignedToID: Owning representative chosen by the rotation (must be valid UUID)
//   - currency: ISO 4217 currency code (three uppercase letters)
//   - lineItems: At least one validated line item
func NewOrder(id kernel.UUID, assignedToID kernel.UUID, currency string, lineItems []LineItem) (*Order, error) {
	o := &Order{
		status:        New,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setAssignedTo(assignedToID),
		o.setCurrency(currency),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	o.totalAmount = decimal.Zero
	for _, item := range o.lineItems {
		o.totalAmount = o.totalAmount.Add(item.Subtotal())
	}

	return o, nil
}

// RestoreParams carries the full persisted state of an order.
type RestoreParams struct {
	ID           kernel.UUID
	Number       int64
	AssignedToID kernel.UUID
	AgentID      *kernel.UUID
	Status       Status
	Currency     string
	LineItems    []LineItem
	TotalAmount  decimal.Decimal
	ConfirmedAt  *time.Time
	DispatchedAt *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
	StockApplied bool
	AuditNotes   []string
	Version      int
	CreatedAt    time.Time
}

// RestoreOrder reconstructs an order from persistence.
// Used by repository implementations only; the total amount is taken as
// stored, not recomputed.
func RestoreOrder(params RestoreParams) (*Order, error) {
	o := &Order{
		status:        params.Status,
		agentID:       params.AgentID,
		number:        params.Number,
		totalAmount:   params.TotalAmount,
		confirmedAt:   params.ConfirmedAt,
		dispatchedAt:  params.DispatchedAt,
		deliveredAt:   params.DeliveredAt,
		cancelledAt:   params.CancelledAt,
		stockApplied:  params.StockApplied,
		auditNotes:    params.AuditNotes,
		version:       params.Version,
		createdAt:     params.CreatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		params.Status.Validate(),
		o.setID(params.ID),
		o.setAssignedTo(params.AssignedToID),
		o.setCurrency(params.Currency),
		o.setLineItems(params.LineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing order number, or zero if not yet persisted.
func (o *Order) Number() int64 {
	return o.number
}

// AssignedTo returns the owning representative's ID.
func (o *Order) AssignedTo() kernel.UUID {
	return o.assignedToID
}

// Agent returns the delivery agent's ID, or nil if none is assigned.
func (o *Order) Agent() *kernel.UUID {
	return o.agentID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// LineItems returns a copy of the order's line items.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// Currency returns the order's currency code.
func (o *Order) Currency() string {
	return o.currency
}

// TotalAmount returns the immutable order total captured at creation time.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// ConfirmedAt returns when the order first entered Confirmed, or nil.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// DispatchedAt returns when the order first entered Dispatched, or nil.
func (o *Order) DispatchedAt() *time.Time {
	return o.dispatchedAt
}

// DeliveredAt returns when the order first entered Delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns when the order first entered Cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// StockApplied reports whether this order's stock effect is currently applied.
func (o *Order) StockApplied() bool {
	return o.stockApplied
}

// AuditNotes returns a copy of the operator notes recorded on transitions.
func (o *Order) AuditNotes() []string {
	notes := make([]string, len(o.auditNotes))
	copy(notes, o.auditNotes)
	return notes
}

// Version returns the optimistic-concurrency token as loaded from the store.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// SetNumber records the store-assigned display number. The number is assigned
// exactly once; a second assignment is an error.
func (o *Order) SetNumber(number int64) error {
	if o.number != 0 {
		return ErrNumberAlreadyAssigned
	}
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("number is invalid",
			fmt.Errorf("%d is not greater than 0", number))
	}
	o.number = number
	return nil
}

// AssignAgent sets or replaces the delivery agent. Unlike the owning
// representative, the agent is mutable for the life of the order.
func (o *Order) AssignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	o.agentID = &agentID
	return nil
}

// TransitionTo moves the order to newStatus, enforcing the transition table,
// stamping the first entry into each status, and reporting the inventory
// effect the caller must apply through the ledger.
//
// Rules enforced here:
//   - newStatus must be valid and differ from the current status; requesting
//     the current status again is a caller error, not a silent no-op
//   - a transition out of Delivered or Cancelled is a reversal and requires a
//     non-empty reason; the reason becomes an audit note
//   - any transition carrying a reason is recorded as an audit note
//   - timestamps are first-write-wins: re-entering a previously reached status
//     never overwrites the original stamp
//
// Returns the inventory effect of the edge: EffectDeduct when entering
// Delivered, EffectRestore when leaving it, EffectNone otherwise.
func (o *Order) TransitionTo(newStatus Status, reason string, at time.Time) (InventoryEffect, error) {
	if err := newStatus.Validate(); err != nil {
		return EffectNone, err
	}

	if newStatus == o.status {
		return EffectNone, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("order is already %s", o.status))
	}

	if o.status.IsTerminal() {
		if reason == "" {
			return EffectNone, ErrReasonIsRequired
		}
	} else if !o.status.CanTransitionTo(newStatus) {
		return EffectNone, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("cannot transition from %s to %s", o.status, newStatus))
	}

	effect := EffectNone
	switch {
	case newStatus == Delivered && o.status != Delivered:
		effect = EffectDeduct
	case o.status == Delivered && newStatus != Delivered:
		effect = EffectRestore
	}

	o.stampStatus(newStatus, at)
	if reason != "" {
		o.auditNotes = append(o.auditNotes,
			fmt.Sprintf("%s -> %s: %s", o.status, newStatus, reason))
	}
	o.status = newStatus

	return effect, nil
}

// ApplyStockEffect marks the order's stock effect as applied.
// Returns ErrStockAlreadyApplied if it already is; a double deduction must
// fail loudly rather than silently repeat.
func (o *Order) ApplyStockEffect() error {
	if o.stockApplied {
		return ErrStockAlreadyApplied
	}
	o.stockApplied = true
	return nil
}

// RevertStockEffect marks the order's stock effect as no longer applied.
// Returns ErrStockNeverApplied if no matching deduction was recorded.
func (o *Order) RevertStockEffect() error {
	if !o.stockApplied {
		return ErrStockNeverApplied
	}
	o.stockApplied = false
	return nil
}

// stampStatus records the first entry into a timestamped status.
// Later entries into the same status keep the original stamp.
func (o *Order) stampStatus(newStatus Status, at time.Time) {
	switch newStatus {
	case Confirmed:
		if o.confirmedAt == nil {
			o.confirmedAt = &at
		}
	case Dispatched:
		if o.dispatchedAt == nil {
			o.dispatchedAt = &at
		}
	case Delivered:
		if o.deliveredAt == nil {
			o.deliveredAt = &at
		}
	case Cancelled:
		if o.cancelledAt == nil {
			o.cancelledAt = &at
		}
	case New, Postponed, Unknown:
		// no timestamp field for these statuses
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setAssignedTo(assignedToID kernel.UUID) error {
	if err := assignedToID.Validate(); err != nil {
		return err
	}
	o.assignedToID = assignedToID
	return nil
}

func (o *Order) setCurrency(currency string) error {
	if len(currency) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("currency is invalid",
			fmt.Errorf("%q is not a three-letter currency code", currency))
	}
	o.currency = currency
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}
