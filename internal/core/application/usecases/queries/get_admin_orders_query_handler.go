package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAdminOrdersQueryHandler retrieves the full order list for the
// operations dashboard, newest first.
type GetAdminOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAdminOrdersQueryHandler creates a handler for operations order
// list queries.
func NewGetAdminOrdersQueryHandler(db *gorm.DB) GetAdminOrdersQueryHandler {
	return GetAdminOrdersQueryHandler{db: db}
}

// Handle executes the operations order list query, applying the status
// filter when the query carries one.
func (h GetAdminOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAdminOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + orderColumns + `
		FROM orders
	`
	args := make([]any, 0, 1)
	if query.Status() != nil {
		sql += ` WHERE status = ?`
		args = append(args, *query.Status())
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
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
