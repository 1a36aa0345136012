package queries

import (
	"errors"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/guard"
)

var ErrGetRiderQueueQueryIsNotConstructed = errors.New(
	"GetRiderQueueQuery must be created via NewGetRiderQueueQuery constructor",
)

// GetRiderQueueQuery retrieves a rider's active tasks: accepted pickups,
// orders in hand, and cleaned laundry awaiting delivery. The rider client
// polls it as its work queue.
type GetRiderQueueQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRiderQueueQuery creates a query for a rider's active tasks.
func NewGetRiderQueueQuery(riderID kernel.UUID) (GetRiderQueueQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderQueueQuery{}, err
	}
	return GetRiderQueueQuery{riderID: riderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderQueueQueryIsNotConstructed)
}

// RiderID returns the rider whose queue is requested.
func (q GetRiderQueueQuery) RiderID() kernel.UUID {
	return q.riderID
}
