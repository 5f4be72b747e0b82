package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when using an improperly initialized LineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is an immutable value object capturing one product position of an
// order. Price and cost are snapshotted at order time; later product price
// changes must never retroactively change historical orders.
type LineItem struct {
	productID kernel.UUID
	quantity  int
	price     decimal.Decimal
	cost      decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item snapshot.
//
// Parameters:
//   - productID: the sold product (must be a valid UUID)
//   - quantity: units sold (must be positive)
//   - price: unit sale price at order time (must not be negative)
//   - cost: unit cost at order time (must not be negative)
func NewLineItem(productID kernel.UUID, quantity int, price, cost decimal.Decimal) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setPrice(price),
		item.setCost(cost),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the identifier of the sold product.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the number of units sold.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Price returns the unit sale price snapshotted at order time.
func (li LineItem) Price() decimal.Decimal {
	return li.price
}

// Cost returns the unit cost snapshotted at order time.
func (li LineItem) Cost() decimal.Decimal {
	return li.cost
}

// Subtotal returns price multiplied by quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.price.Mul(decimal.NewFromInt(int64(li.quantity)))
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%s is negative", price))
	}
	li.price = price
	return nil
}

func (li *LineItem) setCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("cost is invalid",
			fmt.Errorf("%s is negative", cost))
	}
	li.cost = cost
	return nil
}
