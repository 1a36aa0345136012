package commands

import (
	"errors"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/guard"
)

var ErrAcceptTaskCommandIsNotConstructed = errors.New(
	"AcceptTaskCommand must be created via NewAcceptTaskCommand constructor",
)

// AcceptTaskCommand represents a rider accepting their assigned dispatch
// task.
type AcceptTaskCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptTaskCommand creates a command for a rider to accept a task.
func NewAcceptTaskCommand(orderID kernel.OrderID, riderID kernel.UUID) (AcceptTaskCommand, error) {
	if err := errors.Join(orderID.Validate(), riderID.Validate()); err != nil {
		return AcceptTaskCommand{}, err
	}

	return AcceptTaskCommand{
		orderID: orderID,
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptTaskCommand) Validate() error {
	return c.guard.Validate(ErrAcceptTaskCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose task is accepted.
func (c AcceptTaskCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// RiderID returns the accepting rider's identity.
func (c AcceptTaskCommand) RiderID() kernel.UUID {
	return c.riderID
}
