package kernel

import (
	"fmt"
	"math"

	"ezwash/internal/pkg/errs"
)

// Money is a non-negative monetary amount stored as integer cents to keep
// arithmetic exact. Order totals and commission amounts are Money values.
//
// The zero value is a valid zero amount, so Money can be embedded in
// aggregates without a constructor guard; negative amounts are rejected at
// construction.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money value from an amount in cents.
// Returns a validation error for negative amounts.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromFloat creates a Money value from a decimal amount such as
// 100.00, rounding to the nearest cent. API payloads carry decimal floats;
// everything past the adapter boundary works in cents.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidError("amount")
	}
	return NewMoneyFromCents(int64(math.Round(amount * 100)))
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount as a decimal number of currency units,
// e.g. 500 cents -> 5.00. Used when rendering API responses.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Percent returns the given percentage of the amount, rounded to the nearest
// cent. Used for referral commission math (5% of the order total).
func (m Money) Percent(p int64) Money {
	cents := (m.cents*p + 50) / 100
	return Money{cents: cents}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount as a decimal string, e.g. "5.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
