package order

import (
	"ezwash/internal/pkg/errs"
)

// Address is the pickup location payload attached to an order.
// The street line is required; area and landmark are free-form hints for the
// rider.
type Address struct {
	street   string
	area     string
	landmark string
}

// NewAddress creates a validated pickup address.
func NewAddress(street, area, landmark string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	return Address{street: street, area: area, landmark: landmark}, nil
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// Area returns the neighbourhood or district, possibly empty.
func (a Address) Area() string {
	return a.area
}

// Landmark returns a free-form locating hint, possibly empty.
func (a Address) Landmark() string {
	return a.landmark
}

// Validate checks that the address carries its required street line.
func (a Address) Validate() error {
	if a.street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	return nil
}
