package ports

import (
	"context"

	"ezwash/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	// Add persists a new review. The store holds a unique index on the
	// order identifier; a second review for the same order returns an
	// ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *review.Review) error
}
