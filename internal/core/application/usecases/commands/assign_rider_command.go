package commands

import (
	"errors"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand represents operations staff assigning (or re-assigning)
// a rider to an order.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	riderID kernel.UUID
	actorID kernel.UUID
	note    string

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command to assign a rider to an order.
func NewAssignRiderCommand(
	orderID kernel.OrderID,
	riderID kernel.UUID,
	actorID kernel.UUID,
	note string,
) (AssignRiderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		riderID.Validate(),
		actorID.Validate(),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return AssignRiderCommand{
		orderID: orderID,
		riderID: riderID,
		actorID: actorID,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being assigned.
func (c AssignRiderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// RiderID returns the rider being assigned.
func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// ActorID returns the identity of the assigning staff member.
func (c AssignRiderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Note returns the optional audit note.
func (c AssignRiderCommand) Note() string {
	return c.note
}
