package queries

import (
	"errors"
	"time"

	"ezwash/internal/pkg/guard"
)

// publicReviewsLimit caps the storefront review feed.
const publicReviewsLimit = 10

var ErrGetPublicReviewsQueryIsNotConstructed = errors.New(
	"GetPublicReviewsQuery must be created via NewGetPublicReviewsQuery constructor",
)

// GetPublicReviewsQuery retrieves the storefront review feed: the most
// recent high-rated reviews. Low ratings stay visible to operations only.
type GetPublicReviewsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPublicReviewsQuery creates a query for the public review feed.
func NewGetPublicReviewsQuery() GetPublicReviewsQuery {
	return GetPublicReviewsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPublicReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetPublicReviewsQueryIsNotConstructed)
}

// ReviewResponse represents a review in query results.
type ReviewResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
