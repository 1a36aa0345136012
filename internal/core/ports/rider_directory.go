package ports

import (
	"context"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/order"
)

// RiderDirectory is the read-only view into the external user registry that
// the coordinator needs: resolving riders for assignment and resolving the
// ambassador who referred a customer. Identity management itself lives
// outside the system.
type RiderDirectory interface {
	// ResolveActiveRider resolves a rider identity into an assignment with
	// the registry's display name. Returns an ObjectNotFoundError when the
	// identity does not exist, is not a rider, or is inactive.
	ResolveActiveRider(ctx context.Context, riderID kernel.UUID) (order.RiderAssignment, error)

	// ResolveReferringAmbassador returns the identity of the ambassador who
	// referred the customer, or nil when the customer was not referred.
	ResolveReferringAmbassador(ctx context.Context, customerID kernel.UUID) (*kernel.UUID, error)
}
