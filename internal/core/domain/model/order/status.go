package order

import (
	"fmt"

	"ezwash/internal/pkg/errs"
)

// Status represents the lifecycle state of a laundry order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	PENDING ──> ACCEPTED ──> ASSIGNED ──> ACCEPTED ──> PICKED_UP ──> CLEANING ──> READY ──> DELIVERED
//	    │                        ▲
//	    └────────────────────────┘
//	      (rider assignment; re-assignment allowed while ASSIGNED)
//
//	any non-terminal ──> CANCELLED
//
// The ACCEPTED label is reused by the workflow: operations accepting a
// pending order and a rider accepting an assigned task both land on it.
// The edges keep the two meanings apart.
//
// DELIVERED and CANCELLED are terminal; no transitions leave them.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a customer places an order.
	Pending

	// Accepted indicates either that operations accepted a pending order
	// or that the assigned rider accepted the dispatch task.
	Accepted

	// Assigned indicates a rider has been assigned and has not yet
	// accepted the task. Orders can be re-assigned while in this status.
	Assigned

	// PickedUp indicates the rider collected the laundry from the customer.
	PickedUp

	// Cleaning indicates the laundry is being processed at the facility.
	Cleaning

	// Ready indicates the laundry is cleaned and awaiting delivery.
	Ready

	// Delivered indicates the rider returned the laundry to the customer.
	// This is a terminal state that triggers referral commission crediting.
	Delivered

	// Cancelled is the terminal state for orders that will not proceed.
	// Cancellation is a status, not removal; orders are never deleted.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Accepted:  "ACCEPTED",
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		Cleaning:  "CLEANING",
		Ready:     "READY",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// transitions is the closed edge set of the state machine. A status maps to
// the set of statuses it may move to. Cancellation from every non-terminal
// status is part of the table rather than special-cased.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Accepted, Assigned, Cancelled},
		Accepted:  {Assigned, PickedUp, Cancelled},
		Assigned:  {Accepted, Assigned, Cancelled},
		PickedUp:  {Cleaning, Cancelled},
		Cleaning:  {Ready, Cancelled},
		Ready:     {Delivered, Cancelled},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses a wire/storage label such as "PICKED_UP".
// Returns a validation error for labels outside the enum.
func StatusFromString(s string) (Status, error) {
	for status, label := range getStatusStrings() {
		if label == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// String returns the wire/storage label of the status, e.g. "PICKED_UP".
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks if the Status value is a member of the enum.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transitions leave the status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the state machine has an edge from the
// current status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status along the edge to target.
//
// Returns:
//   - (target, nil) when the edge exists
//   - (0, InvalidTransitionError) otherwise; the error reports the current
//     status so the caller can present a meaningful message
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

// ValidateCanHaveRider validates the consistency between order status and
// rider assignment.
//
// Business rules:
//   - Pending orders must not have a rider assigned
//   - Assigned, PickedUp, Cleaning, Ready, and Delivered orders must have one
//   - Accepted orders may go either way: operations can accept with an
//     optional rider pre-assignment, and rider-accepted tasks always have one
//   - Cancelled orders keep whatever assignment they had
func (s Status) ValidateCanHaveRider(rider bool) error {
	if rider && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a rider", s.String()))
	}

	requiresRider := s == Assigned || s == PickedUp || s == Cleaning || s == Ready || s == Delivered
	if !rider && requiresRider {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no rider", s.String()))
	}

	return nil
}
