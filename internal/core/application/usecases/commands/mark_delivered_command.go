package commands

import (
	"errors"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents the assigned rider confirming delivery of
// the cleaned laundry back to the customer.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	riderID kernel.UUID
	note    string

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to confirm delivery.
func NewMarkDeliveredCommand(orderID kernel.OrderID, riderID kernel.UUID, note string) (MarkDeliveredCommand, error) {
	if err := errors.Join(orderID.Validate(), riderID.Validate()); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return MarkDeliveredCommand{
		orderID: orderID,
		riderID: riderID,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivered order.
func (c MarkDeliveredCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// RiderID returns the confirming rider's identity.
func (c MarkDeliveredCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Note returns the optional audit note.
func (c MarkDeliveredCommand) Note() string {
	return c.note
}
