package queries

import (
	"context"

	"ezwash/internal/core/domain/model/actor"
	"ezwash/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order's detail with role-based
// scoping.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order detail query. Scoping is part of the WHERE
// clause, so an order outside the requester's scope and a missing order are
// indistinguishable to the caller.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	sql := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE order_id = ?`
	args := []any{query.OrderID().String()}

	switch query.Requester().Role() {
	case actor.Customer:
		sql += ` AND customer_id = ?`
		args = append(args, query.Requester().ID().Bytes())
	case actor.Rider:
		sql += ` AND rider_id = ?`
		args = append(args, query.Requester().ID().Bytes())
	case actor.Operations:
		// unrestricted
	default:
		return OrderResponse{}, errs.NewUnauthorizedError(
			query.Requester().ID().String(), "view this order")
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order_id", query.OrderID().String())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	return resp, rows.Err()
}
