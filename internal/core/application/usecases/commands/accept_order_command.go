package commands

import (
	"errors"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents operations staff confirming a pending order,
// optionally pre-assigning a rider in the same change.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	actorID kernel.UUID
	riderID *kernel.UUID
	note    string

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept a pending order.
// The rider identity is optional; when present it is resolved against the
// rider directory before the transaction starts.
func NewAcceptOrderCommand(
	orderID kernel.OrderID,
	actorID kernel.UUID,
	riderID *kernel.UUID,
	note string,
) (AcceptOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return AcceptOrderCommand{}, err
	}
	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return AcceptOrderCommand{}, err
		}
	}

	return AcceptOrderCommand{
		orderID: orderID,
		actorID: actorID,
		riderID: riderID,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being accepted.
func (c AcceptOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ActorID returns the identity of the accepting staff member.
func (c AcceptOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// RiderID returns the optional rider to pre-assign, or nil.
func (c AcceptOrderCommand) RiderID() *kernel.UUID {
	return c.riderID
}

// Note returns the optional audit note.
func (c AcceptOrderCommand) Note() string {
	return c.note
}
