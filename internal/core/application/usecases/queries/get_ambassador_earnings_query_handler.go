package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAmbassadorEarningsQueryHandler retrieves an ambassador's commission
// statement from the database.
type GetAmbassadorEarningsQueryHandler struct {
	db *gorm.DB
}

// NewGetAmbassadorEarningsQueryHandler creates a handler for ambassador
// earnings queries.
func NewGetAmbassadorEarningsQueryHandler(db *gorm.DB) GetAmbassadorEarningsQueryHandler {
	return GetAmbassadorEarningsQueryHandler{db: db}
}

// Handle executes the ambassador earnings query: commission lines newest
// first plus the total earned. An ambassador with no commissions gets an
// empty statement, not an error.
func (h GetAmbassadorEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetAmbassadorEarningsQuery,
) (AmbassadorEarningsResponse, error) {
	if err := query.Validate(); err != nil {
		return AmbassadorEarningsResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id::text, order_id, order_total_cents, amount_cents, created_at
		FROM commissions
		WHERE ambassador_id = ?
		ORDER BY created_at DESC
	`, query.AmbassadorID().Bytes()).Rows()
	if err != nil {
		return AmbassadorEarningsResponse{}, err
	}
	defer rows.Close()

	resp := AmbassadorEarningsResponse{
		AmbassadorID: query.AmbassadorID().String(),
		Commissions:  make([]CommissionResponse, 0),
	}

	var totalCents int64
	for rows.Next() {
		var (
			line            CommissionResponse
			orderTotalCents int64
			amountCents     int64
		)
		if scanErr := rows.Scan(
			&line.ID,
			&line.OrderID,
			&orderTotalCents,
			&amountCents,
			&line.CreatedAt,
		); scanErr != nil {
			return AmbassadorEarningsResponse{}, scanErr
		}
		line.OrderTotal = float64(orderTotalCents) / 100
		line.Amount = float64(amountCents) / 100
		totalCents += amountCents
		resp.Commissions = append(resp.Commissions, line)
	}

	if err = rows.Err(); err != nil {
		return AmbassadorEarningsResponse{}, err
	}

	resp.TotalEarned = float64(totalCents) / 100
	return resp, nil
}
