package queries

import (
	"errors"

	"ezwash/internal/pkg/guard"
)

var ErrGetOperationsStatsQueryIsNotConstructed = errors.New(
	"GetOperationsStatsQuery must be created via NewGetOperationsStatsQuery constructor",
)

// GetOperationsStatsQuery retrieves aggregate figures for the operations
// dashboard: order counts per status, delivered revenue, and review volume.
type GetOperationsStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOperationsStatsQuery creates a query for the operations dashboard
// figures.
func NewGetOperationsStatsQuery() GetOperationsStatsQuery {
	return GetOperationsStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOperationsStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOperationsStatsQueryIsNotConstructed)
}

// OperationsStatsResponse represents the operations dashboard figures.
// StatusCounts keys are status labels such as "PENDING"; statuses with no
// orders are absent.
type OperationsStatsResponse struct {
	TotalOrders      int            `json:"total_orders"`
	StatusCounts     map[string]int `json:"status_counts"`
	DeliveredRevenue float64        `json:"delivered_revenue"`
	ReviewCount      int            `json:"review_count"`
}
