package queries

import (
	"errors"

	"ezwash/internal/pkg/guard"
)

// adminReviewsLimit caps the operations review list.
const adminReviewsLimit = 50

var ErrGetAdminReviewsQueryIsNotConstructed = errors.New(
	"GetAdminReviewsQuery must be created via NewGetAdminReviewsQuery constructor",
)

// GetAdminReviewsQuery retrieves the most recent reviews for the operations
// dashboard, unfiltered by rating.
type GetAdminReviewsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAdminReviewsQuery creates a query for the operations review list.
func NewGetAdminReviewsQuery() GetAdminReviewsQuery {
	return GetAdminReviewsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAdminReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminReviewsQueryIsNotConstructed)
}
