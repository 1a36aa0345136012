package queries

import (
	"errors"

	"ezwash/internal/core/domain/model/order"
	"ezwash/internal/pkg/guard"
)

var ErrGetAdminOrdersQueryIsNotConstructed = errors.New(
	"GetAdminOrdersQuery must be created via NewGetAdminOrdersQuery constructor",
)

// GetAdminOrdersQuery retrieves all orders for the operations dashboard,
// optionally filtered to one status.
type GetAdminOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetAdminOrdersQuery creates a query for the operations order list.
// A nil status means no filter.
func NewGetAdminOrdersQuery(status *order.Status) (GetAdminOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetAdminOrdersQuery{}, err
		}
	}
	return GetAdminOrdersQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAdminOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter, or nil.
func (q GetAdminOrdersQuery) Status() *order.Status {
	return q.status
}
