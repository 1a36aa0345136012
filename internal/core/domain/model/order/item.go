package order

import (
	"fmt"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/errs"
)

// Item is one line item of an order: a named laundry service with a quantity
// and a unit price. Items are immutable after order creation.
type Item struct {
	name      string
	quantity  int
	unitPrice kernel.Money
}

// NewItem creates a validated line item.
// The name must be non-empty and the quantity positive.
func NewItem(name string, quantity int, unitPrice kernel.Money) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Item{name: name, quantity: quantity, unitPrice: unitPrice}, nil
}

// Name returns the service name, e.g. "Wash & Fold".
func (i Item) Name() string {
	return i.name
}

// Quantity returns how many units were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}
