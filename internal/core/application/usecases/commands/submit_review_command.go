package commands

import (
	"errors"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/review"
	"ezwash/internal/pkg/errs"
	"ezwash/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand represents a customer rating their delivered order.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.OrderID
	customerID kernel.UUID
	rating     int
	comment    string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a command to submit a review.
// The rating must lie within the review bounds; the comment is optional.
func NewSubmitReviewCommand(
	orderID kernel.OrderID,
	customerID kernel.UUID,
	rating int,
	comment string,
) (SubmitReviewCommand, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return SubmitReviewCommand{}, err
	}
	if rating < review.MinRating || rating > review.MaxRating {
		return SubmitReviewCommand{}, errs.NewValueIsOutOfRangeError(
			"rating", rating, review.MinRating, review.MaxRating)
	}

	return SubmitReviewCommand{
		orderID:    orderID,
		customerID: customerID,
		rating:     rating,
		comment:    comment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// OrderID returns the identifier of the reviewed order.
func (c SubmitReviewCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// CustomerID returns the reviewing customer's identity.
func (c SubmitReviewCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Rating returns the star rating.
func (c SubmitReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the optional free-text comment.
func (c SubmitReviewCommand) Comment() string {
	return c.comment
}
