package ports

import (
	"context"

	"ezwash/internal/core/domain/model/commission"
)

// CommissionRepository defines the persistence contract for commission
// credits.
type CommissionRepository interface {
	// Add persists a new commission credit. The store holds a unique index
	// on the order identifier; crediting the same order twice returns an
	// ObjectAlreadyExistsError, which makes retries idempotent.
	Add(ctx context.Context, aggregate *commission.Commission) error
}
