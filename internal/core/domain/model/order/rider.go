package order

import (
	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/errs"
)

// RiderAssignment is the weak reference from an order to a rider identity in
// the external user registry. The display name is denormalized for read
// performance; the coordinator never owns rider identity data.
//
// Modelling the pair as one value keeps the invariant that the rider id and
// the cached name are both set or both absent.
type RiderAssignment struct {
	riderID kernel.UUID
	name    string
}

// NewRiderAssignment creates a validated rider reference.
func NewRiderAssignment(riderID kernel.UUID, name string) (RiderAssignment, error) {
	if err := riderID.Validate(); err != nil {
		return RiderAssignment{}, err
	}
	if name == "" {
		return RiderAssignment{}, errs.NewValueIsRequiredError("rider name")
	}
	return RiderAssignment{riderID: riderID, name: name}, nil
}

// RiderID returns the rider's identity in the external user registry.
func (r RiderAssignment) RiderID() kernel.UUID {
	return r.riderID
}

// Name returns the rider's cached display name.
func (r RiderAssignment) Name() string {
	return r.name
}
