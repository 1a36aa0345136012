// Package commissionrepo persists referral commission credits. The unique
// index on the order identifier is what makes crediting idempotent: the
// delivery path and the reconciliation job can both attempt the same credit
// and only one row ever lands.
package commissionrepo

import (
	"time"

	"ezwash/internal/core/domain/model/commission"

	"github.com/google/uuid"
)

// CommissionDTO represents the database structure for persisting commission
// credits.
type CommissionDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         string    `gorm:"uniqueIndex"`
	AmbassadorID    uuid.UUID `gorm:"type:uuid;index"`
	OrderTotalCents int64
	AmountCents     int64
	CreatedAt       time.Time
}

// TableName specifies the database table name for commission entities.
func (CommissionDTO) TableName() string {
	return "commissions"
}

func fromDomain(aggregate *commission.Commission) CommissionDTO {
	return CommissionDTO{
		ID:              aggregate.ID().Bytes(),
		OrderID:         aggregate.OrderID().String(),
		AmbassadorID:    aggregate.AmbassadorID().Bytes(),
		OrderTotalCents: aggregate.OrderTotal().Cents(),
		AmountCents:     aggregate.Amount().Cents(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}
