package queries

import (
	"context"
	"database/sql"

	"ezwash/internal/core/domain/model/review"

	"gorm.io/gorm"
)

// GetPublicReviewsQueryHandler retrieves the most recent high-rated reviews
// for the storefront.
type GetPublicReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetPublicReviewsQueryHandler creates a handler for public review feed
// queries.
func NewGetPublicReviewsQueryHandler(db *gorm.DB) GetPublicReviewsQueryHandler {
	return GetPublicReviewsQueryHandler{db: db}
}

// Handle executes the public review feed query. Only reviews rated at or
// above the publication threshold appear, newest first.
func (h GetPublicReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetPublicReviewsQuery,
) ([]ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id::text, order_id, customer_id::text, rating, comment, created_at
		FROM reviews
		WHERE rating >= ?
		ORDER BY created_at DESC
		LIMIT ?
	`, review.MinPublicRating, publicReviewsLimit).Rows()
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

func scanReviewRow(rows *sql.Rows) (ReviewResponse, error) {
	var (
		resp    ReviewResponse
		comment sql.NullString
	)
	if err := rows.Scan(
		&resp.ID,
		&resp.OrderID,
		&resp.CustomerID,
		&resp.Rating,
		&comment,
		&resp.CreatedAt,
	); err != nil {
		return ReviewResponse{}, err
	}
	resp.Comment = comment.String
	return resp, nil
}
