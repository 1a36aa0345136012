package commands

import (
	"errors"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/guard"
)

var ErrMarkPickedUpCommandIsNotConstructed = errors.New(
	"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
)

// MarkPickedUpCommand represents the assigned rider confirming pickup of the
// laundry from the customer.
type MarkPickedUpCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	riderID kernel.UUID
	note    string

	guard guard.ConstructorGuard
}

// NewMarkPickedUpCommand creates a command to confirm pickup.
func NewMarkPickedUpCommand(orderID kernel.OrderID, riderID kernel.UUID, note string) (MarkPickedUpCommand, error) {
	if err := errors.Join(orderID.Validate(), riderID.Validate()); err != nil {
		return MarkPickedUpCommand{}, err
	}

	return MarkPickedUpCommand{
		orderID: orderID,
		riderID: riderID,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}

// OrderID returns the identifier of the picked-up order.
func (c MarkPickedUpCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// RiderID returns the confirming rider's identity.
func (c MarkPickedUpCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Note returns the optional audit note.
func (c MarkPickedUpCommand) Note() string {
	return c.note
}
