package queries

import (
	"errors"

	"ezwash/internal/core/domain/model/actor"
	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order's detail, scoped to the requesting
// actor: customers see their own orders, riders their assigned ones, and
// operations staff everything. An order outside the actor's scope reads as
// not found.
type GetOrderQuery struct {
	orderID   kernel.OrderID
	requester actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's detail.
func NewGetOrderQuery(orderID kernel.OrderID, requester actor.Actor) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), requester.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, requester: requester, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// Requester returns the actor asking for the order.
func (q GetOrderQuery) Requester() actor.Actor {
	return q.requester
}
