package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"ezwash/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly
// initialized through one of the constructor functions.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID or OrderIDFromString")

const orderIDPrefix = "ORD-"

var orderIDPattern = regexp.MustCompile(`^ORD-[A-Z0-9]{6}$`)

// OrderID is the human-readable order identifier, distinct from the store's
// internal record identifier. The format is "ORD-" followed by six uppercase
// alphanumeric characters, e.g. "ORD-9F41AC".
//
// The zero value is invalid; use NewOrderID to mint a fresh identifier or
// OrderIDFromString to parse one received from the outside.
type OrderID struct {
	value string
}

// NewOrderID mints a new order identifier from random UUID entropy.
// Collisions are not checked here; the store's unique index on the order
// identifier is the final arbiter.
func NewOrderID() OrderID {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return OrderID{value: orderIDPrefix + suffix}
}

// OrderIDFromString parses and validates an order identifier.
// Returns a validation error if the value does not match the
// "ORD-" + 6 uppercase alphanumeric characters format.
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}
	if !orderIDPattern.MatchString(s) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q does not match the ORD-XXXXXX format", s))
	}
	return OrderID{value: s}, nil
}

// String returns the identifier in its wire form, e.g. "ORD-9F41AC".
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks if the OrderID is properly constructed.
// Returns ErrOrderIDIsNotConstructed for a zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
