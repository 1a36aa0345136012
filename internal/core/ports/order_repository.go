// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, the external user
// registry, and the notification publisher. These interfaces establish
// dependency inversion and testability.
package ports

import (
	"context"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update is conditional: the aggregate carries the status it was loaded
// with, and implementations must only apply the update when the stored row
// still holds that status. A row that moved on returns an
// InvalidTransitionError instead of silently overwriting concurrent work.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, conditioned
	// on the row still holding the status the aggregate was loaded with.
	// Returns an InvalidTransitionError when the condition fails.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByOrderID retrieves an order by its human-readable identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	GetByOrderID(ctx context.Context, orderID kernel.OrderID) (*order.Order, error)

	// GetDeliveredWithoutCommission retrieves up to limit delivered orders
	// that have no commission record yet, oldest first. Used by the
	// commission reconciliation job to re-drive crediting after failed
	// post-delivery attempts.
	GetDeliveredWithoutCommission(ctx context.Context, limit int) ([]*order.Order, error)
}
