// Package product contains the Product entity whose CurrentStock counter is
// the shared mutable state adjusted by order deliveries and their reversals.
//
// Stock is adjusted exclusively through ProductRepository.AdjustStock, which
// serializes concurrent adjustments at the database counter level. No other
// code path writes the counter.
package product

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrInsufficientStock is returned when a deduction would take stock
	// negative and the oversell policy forbids it.
	ErrInsufficientStock = errors.New("insufficient stock for deduction")
)

// Product is a sellable item with a live stock counter.
//
// CurrentStock may legitimately be negative when the oversell policy permits
// deductions below zero; negative stock is surfaced by the oversell report, not
// hidden by the domain model.
type Product struct {
	id           kernel.UUID
	name         string
	currentStock int

	guard guard.ConstructorGuard
}

// NewProduct creates a product with an initial stock level.
func NewProduct(id kernel.UUID, name string, currentStock int) (*Product, error) {
	p := &Product{
		currentStock: currentStock,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
// Used by repository implementations only.
func RestoreProduct(id kernel.UUID, name string, currentStock int) (*Product, error) {
	return NewProduct(id, name, currentStock)
}

// Validate ensures the Product was constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// CurrentStock returns the stock level as of the last read.
func (p *Product) CurrentStock() int {
	return p.currentStock
}

// IsOversold reports whether more units were delivered than were in stock.
func (p *Product) IsOversold() bool {
	return p.currentStock < 0
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}
