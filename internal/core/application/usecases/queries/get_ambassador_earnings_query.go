package queries

import (
	"errors"
	"time"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/guard"
)

var ErrGetAmbassadorEarningsQueryIsNotConstructed = errors.New(
	"GetAmbassadorEarningsQuery must be created via NewGetAmbassadorEarningsQuery constructor",
)

// GetAmbassadorEarningsQuery retrieves an ambassador's referral commissions
// and their running total.
type GetAmbassadorEarningsQuery struct {
	ambassadorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAmbassadorEarningsQuery creates a query for an ambassador's
// commission statement.
func NewGetAmbassadorEarningsQuery(ambassadorID kernel.UUID) (GetAmbassadorEarningsQuery, error) {
	if err := ambassadorID.Validate(); err != nil {
		return GetAmbassadorEarningsQuery{}, err
	}
	return GetAmbassadorEarningsQuery{
		ambassadorID: ambassadorID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAmbassadorEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetAmbassadorEarningsQueryIsNotConstructed)
}

// AmbassadorID returns the ambassador whose earnings are requested.
func (q GetAmbassadorEarningsQuery) AmbassadorID() kernel.UUID {
	return q.ambassadorID
}

// CommissionResponse is one referral commission line in the ambassador
// statement.
type CommissionResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	OrderTotal float64   `json:"order_total"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// AmbassadorEarningsResponse represents an ambassador's commission
// statement: each credited commission plus the running total.
type AmbassadorEarningsResponse struct {
	AmbassadorID string               `json:"ambassador_id"`
	TotalEarned  float64              `json:"total_earned"`
	Commissions  []CommissionResponse `json:"commissions"`
}
