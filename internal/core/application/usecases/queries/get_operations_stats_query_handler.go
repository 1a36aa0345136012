package queries

import (
	"context"

	"ezwash/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOperationsStatsQueryHandler computes the operations dashboard figures
// with aggregate SQL.
type GetOperationsStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOperationsStatsQueryHandler creates a handler for operations
// dashboard queries.
func NewGetOperationsStatsQueryHandler(db *gorm.DB) GetOperationsStatsQueryHandler {
	return GetOperationsStatsQueryHandler{db: db}
}

// Handle executes the operations dashboard query: order counts grouped by
// status, total revenue of delivered orders, and the review count.
func (h GetOperationsStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOperationsStatsQuery,
) (OperationsStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return OperationsStatsResponse{}, err
	}

	resp := OperationsStatsResponse{StatusCounts: make(map[string]int)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return OperationsStatsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status int
			count  int
		)
		if scanErr := rows.Scan(&status, &count); scanErr != nil {
			return OperationsStatsResponse{}, scanErr
		}
		resp.StatusCounts[order.Status(status).String()] = count
		resp.TotalOrders += count
	}
	if err = rows.Err(); err != nil {
		return OperationsStatsResponse{}, err
	}

	var revenueCents int64
	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_cents), 0)
		FROM orders
		WHERE status = ?
	`, order.Delivered).Scan(&revenueCents).Error
	if err != nil {
		return OperationsStatsResponse{}, err
	}
	resp.DeliveredRevenue = float64(revenueCents) / 100

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM reviews
	`).Scan(&resp.ReviewCount).Error
	if err != nil {
		return OperationsStatsResponse{}, err
	}

	return resp, nil
}
