package queries

import (
	"context"

	"ezwash/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRiderQueueQueryHandler retrieves a rider's active tasks from the
// database, newest first.
type GetRiderQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderQueueQueryHandler creates a handler for rider queue queries.
func NewGetRiderQueueQueryHandler(db *gorm.DB) GetRiderQueueQueryHandler {
	return GetRiderQueueQueryHandler{db: db}
}

// Handle executes the rider queue query. Only statuses the rider acts on
// next appear: Accepted (pickup pending), PickedUp (drop at facility), and
// Ready (deliver back).
func (h GetRiderQueueQueryHandler) Handle(
	ctx context.Context,
	query GetRiderQueueQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE rider_id = ?
		  AND status IN (?, ?, ?)
		ORDER BY created_at DESC
	`, query.RiderID().Bytes(), order.Accepted, order.PickedUp, order.Ready).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
