package services

import (
	"ezwash/internal/core/domain/model/commission"
	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/order"
	"ezwash/internal/pkg/errs"
)

// defaultCommissionRatePercent is the share of the order total credited to
// the referring ambassador on delivery.
const defaultCommissionRatePercent = 5

// ReferralPolicy is a domain service that turns a delivered order into a
// commission credit for the referring ambassador.
//
// Business rules:
//   - Only Delivered orders earn commission
//   - The amount is a fixed percentage of the order total, rounded to the
//     nearest cent
//   - Orders below the rounding floor earn nothing and record nothing
//
// Eligibility (whether the customer was referred at all) is resolved by the
// caller against the user registry; the policy only does the money math.
type ReferralPolicy struct {
	ratePercent int64
}

// NewReferralPolicy creates a ReferralPolicy with the default rate.
func NewReferralPolicy() ReferralPolicy {
	return ReferralPolicy{ratePercent: defaultCommissionRatePercent}
}

// RatePercent returns the commission rate as a whole percentage.
func (p ReferralPolicy) RatePercent() int64 {
	return p.ratePercent
}

// Award computes the commission a delivered order earns for the given
// ambassador.
//
// Returns:
//   - (commission, nil) for a delivered order with a non-zero commission
//   - (nil, nil) when the rounded amount is zero; nothing should be recorded
//   - (nil, InvalidTransitionError) when the order is not Delivered
func (p ReferralPolicy) Award(o *order.Order, ambassadorID kernel.UUID) (*commission.Commission, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := ambassadorID.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Delivered {
		return nil, errs.NewInvalidTransitionError(o.Status().String(), order.Delivered.String())
	}

	amount := o.TotalPrice().Percent(p.ratePercent)
	if amount.IsZero() {
		return nil, nil
	}

	return commission.NewCommission(kernel.NewUUID(), o.OrderID(), ambassadorID, o.TotalPrice(), amount)
}
