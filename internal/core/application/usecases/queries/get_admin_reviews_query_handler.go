package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAdminReviewsQueryHandler retrieves recent reviews for the operations
// dashboard, including ratings below the publication threshold.
type GetAdminReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetAdminReviewsQueryHandler creates a handler for operations review
// list queries.
func NewGetAdminReviewsQueryHandler(db *gorm.DB) GetAdminReviewsQueryHandler {
	return GetAdminReviewsQueryHandler{db: db}
}

// Handle executes the operations review list query, newest first.
func (h GetAdminReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetAdminReviewsQuery,
) ([]ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id::text, order_id, customer_id::text, rating, comment, created_at
		FROM reviews
		ORDER BY created_at DESC
		LIMIT ?
	`, adminReviewsLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]ReviewResponse, 0)
	for rows.Next() {
		resp, scanErr := scanReviewRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		reviews = append(reviews, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
