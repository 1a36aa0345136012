package commands

import (
	"errors"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/order"
	"ezwash/internal/pkg/guard"
)

var ErrUpdateStatusCommandIsNotConstructed = errors.New(
	"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
)

// UpdateStatusCommand represents operations staff driving an in-facility
// status update: Cleaning, Ready, or cancellation. Rider-owned transitions
// go through their own commands and are rejected by the aggregate here.
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	target  order.Status
	actorID kernel.UUID
	note    string

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand creates a command to update an order's status.
func NewUpdateStatusCommand(
	orderID kernel.OrderID,
	target order.Status,
	actorID kernel.UUID,
	note string,
) (UpdateStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		target.Validate(),
		actorID.Validate(),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	return UpdateStatusCommand{
		orderID: orderID,
		target:  target,
		actorID: actorID,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Target returns the status the order should move to.
func (c UpdateStatusCommand) Target() order.Status {
	return c.target
}

// ActorID returns the identity of the updating staff member.
func (c UpdateStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Note returns the optional audit note.
func (c UpdateStatusCommand) Note() string {
	return c.note
}
