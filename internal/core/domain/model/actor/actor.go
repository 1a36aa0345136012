// Package actor models the identity performing an operation on an order.
// Roles are a closed enum checked at the application boundary, replacing
// scattered role-string comparisons inside handlers.
package actor

import (
	"fmt"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/errs"
)

// Role identifies the kind of actor performing an operation.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer places orders and submits reviews for delivered ones.
	Customer

	// Rider is the courier role responsible for pickup and delivery.
	Rider

	// Operations is the staff role that accepts orders, assigns riders,
	// and drives the in-facility statuses.
	Operations

	// Ambassador is the referral-partner role earning commission on
	// referred customers' delivered orders.
	Ambassador
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		Customer:    "CUSTOMER",
		Rider:       "RIDER",
		Operations:  "OPERATIONS",
		Ambassador:  "AMBASSADOR",
	}
}

// RoleFromString parses a role label into the closed enum.
// Labels match the external registry's role column values; the registry's
// ADMIN and SUPER_ADMIN roles both map to Operations here.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "CUSTOMER":
		return Customer, nil
	case "RIDER":
		return Rider, nil
	case "OPERATIONS", "ADMIN", "SUPER_ADMIN":
		return Operations, nil
	case "AMBASSADOR":
		return Ambassador, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a known role", s))
	}
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate checks if the Role value is a member of the closed enum.
func (r Role) Validate() error {
	switch r {
	case Customer, Rider, Operations, Ambassador:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
}

// Actor is the authenticated identity behind a request. Identity and role
// assignment live in the external user registry; the coordinator only ever
// sees this projection.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor creates a validated actor from an identity and a role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's identity in the external user registry.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// Is reports whether the actor holds the given role.
func (a Actor) Is(role Role) bool {
	return a.role == role
}

// Validate checks that the actor carries a constructed identity and a valid
// role.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
