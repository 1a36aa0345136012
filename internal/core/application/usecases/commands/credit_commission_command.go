package commands

import (
	"errors"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/guard"
)

var ErrCreditCommissionCommandIsNotConstructed = errors.New(
	"CreditCommissionCommand must be created via NewCreditCommissionCommand constructor",
)

// CreditCommissionCommand represents the internal request to credit the
// referring ambassador for a delivered order. Issued after delivery commits
// and re-issued by the reconciliation job; crediting is idempotent.
type CreditCommissionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewCreditCommissionCommand creates a command to credit commission for an
// order.
func NewCreditCommissionCommand(orderID kernel.OrderID) (CreditCommissionCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreditCommissionCommand{}, err
	}

	return CreditCommissionCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreditCommissionCommand) Validate() error {
	return c.guard.Validate(ErrCreditCommissionCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivered order.
func (c CreditCommissionCommand) OrderID() kernel.OrderID {
	return c.orderID
}
