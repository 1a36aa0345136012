package review

import (
	"errors"
	"time"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/errs"
	"ezwash/internal/pkg/guard"
)

const (
	// MinRating is the lowest rating a customer can give.
	MinRating = 1
	// MaxRating is the highest rating a customer can give.
	MaxRating = 5

	// MinPublicRating is the lowest rating shown on the public feed.
	MinPublicRating = 4
)

// ErrReviewIsNotConstructed is returned when using an improperly initialized
// Review.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview or RestoreReview")

// Review is a customer's one-time rating of a delivered order. Uniqueness per
// order is enforced both by the order aggregate's review flag and by the
// store's unique index on the order identifier.
type Review struct {
	id         kernel.UUID
	orderID    kernel.OrderID
	customerID kernel.UUID
	rating     int
	comment    string
	createdAt  time.Time
	guard      guard.ConstructorGuard
}

// NewReview creates a validated review for a delivered order.
// The rating must lie within [MinRating, MaxRating]; the comment is optional.
func NewReview(
	id kernel.UUID,
	orderID kernel.OrderID,
	customerID kernel.UUID,
	rating int,
	comment string,
) (*Review, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		customerID.Validate(),
	); err != nil {
		return nil, err
	}
	if rating < MinRating || rating > MaxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	return &Review{
		id:         id,
		orderID:    orderID,
		customerID: customerID,
		rating:     rating,
		comment:    comment,
		createdAt:  time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreReview reconstructs a review from persistence.
func RestoreReview(
	id kernel.UUID,
	orderID kernel.OrderID,
	customerID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	review, err := NewReview(id, orderID, customerID, rating, comment)
	if err != nil {
		return nil, err
	}
	review.createdAt = createdAt
	return review, nil
}

// Validate ensures the Review was created through NewReview or RestoreReview.
func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

// ID returns the review's identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// OrderID returns the reviewed order's identifier.
func (r *Review) OrderID() kernel.OrderID {
	return r.orderID
}

// CustomerID returns the reviewing customer's identity.
func (r *Review) CustomerID() kernel.UUID {
	return r.customerID
}

// Rating returns the star rating.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional free-text comment.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns when the review was submitted.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

// IsPublic reports whether the review qualifies for the public feed.
func (r *Review) IsPublic() bool {
	return r.rating >= MinPublicRating
}
