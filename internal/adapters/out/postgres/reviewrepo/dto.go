// Package reviewrepo persists customer reviews. Reviews are append-only:
// the store holds one review per order, enforced by a unique index on the
// order identifier.
package reviewrepo

import (
	"time"

	"ezwash/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews.
type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    string    `gorm:"uniqueIndex"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Rating     int       `gorm:"index"`
	Comment    *string
	CreatedAt  time.Time
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(aggregate *review.Review) ReviewDTO {
	var comment *string
	if c := aggregate.Comment(); c != "" {
		comment = &c
	}

	return ReviewDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().String(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Rating:     aggregate.Rating(),
		Comment:    comment,
		CreatedAt:  aggregate.CreatedAt(),
	}
}
