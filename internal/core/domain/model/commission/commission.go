package commission

import (
	"errors"
	"time"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/pkg/errs"
	"ezwash/internal/pkg/guard"
)

// ErrCommissionIsNotConstructed is returned when using an improperly
// initialized Commission.
var ErrCommissionIsNotConstructed = errors.New("Commission must be created via NewCommission or RestoreCommission")

// Commission is one referral commission credit: the reward an ambassador
// earns when an order placed by a customer they referred is delivered.
//
// At most one commission exists per order. The store enforces this with a
// unique index on the order identifier, which makes crediting idempotent
// under delivery retries.
type Commission struct {
	id           kernel.UUID
	orderID      kernel.OrderID
	ambassadorID kernel.UUID
	orderTotal   kernel.Money
	amount       kernel.Money
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

// NewCommission creates a validated commission credit. The amount must be
// positive; zero commissions are never recorded.
func NewCommission(
	id kernel.UUID,
	orderID kernel.OrderID,
	ambassadorID kernel.UUID,
	orderTotal kernel.Money,
	amount kernel.Money,
) (*Commission, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		ambassadorID.Validate(),
	); err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, errs.NewValueIsRequiredError("commission amount")
	}

	return &Commission{
		id:           id,
		orderID:      orderID,
		ambassadorID: ambassadorID,
		orderTotal:   orderTotal,
		amount:       amount,
		createdAt:    time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreCommission reconstructs a commission from persistence.
func RestoreCommission(
	id kernel.UUID,
	orderID kernel.OrderID,
	ambassadorID kernel.UUID,
	orderTotal kernel.Money,
	amount kernel.Money,
	createdAt time.Time,
) (*Commission, error) {
	commission, err := NewCommission(id, orderID, ambassadorID, orderTotal, amount)
	if err != nil {
		return nil, err
	}
	commission.createdAt = createdAt
	return commission, nil
}

// Validate ensures the Commission was created through NewCommission or
// RestoreCommission.
func (c *Commission) Validate() error {
	if c == nil {
		return ErrCommissionIsNotConstructed
	}
	return c.guard.Validate(ErrCommissionIsNotConstructed)
}

// ID returns the commission's identifier.
func (c *Commission) ID() kernel.UUID {
	return c.id
}

// OrderID returns the identifier of the delivered order that earned the
// commission.
func (c *Commission) OrderID() kernel.OrderID {
	return c.orderID
}

// AmbassadorID returns the identity of the credited ambassador.
func (c *Commission) AmbassadorID() kernel.UUID {
	return c.ambassadorID
}

// OrderTotal returns the order total the commission was computed from.
func (c *Commission) OrderTotal() kernel.Money {
	return c.orderTotal
}

// Amount returns the credited commission amount.
func (c *Commission) Amount() kernel.Money {
	return c.amount
}

// CreatedAt returns when the commission was credited.
func (c *Commission) CreatedAt() time.Time {
	return c.createdAt
}
