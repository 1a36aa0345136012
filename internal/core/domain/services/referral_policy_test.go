package services_test

import (
	"testing"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/order"
	"ezwash/internal/core/domain/services"
	"ezwash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderWithTotal(t *testing.T, totalCents int64, delivered bool) *order.Order {
	t.Helper()

	total, err := kernel.NewMoneyFromCents(totalCents)
	require.NoError(t, err)
	unitPrice, err := kernel.NewMoneyFromCents(totalCents)
	require.NoError(t, err)
	item, err := order.NewItem("Wash & Fold", 1, unitPrice)
	require.NoError(t, err)
	pickup, err := order.NewAddress("12 Adeola Odeku St", "", "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewOrderID(), kernel.NewUUID(),
		"Ada Obi", []order.Item{item}, total, pickup, "+2348012345678")
	require.NoError(t, err)

	if delivered {
		riderID := kernel.NewUUID()
		rider, err := order.NewRiderAssignment(riderID, "Musa Bello")
		require.NoError(t, err)
		opsID := kernel.NewUUID()
		require.NoError(t, o.AssignRider(rider, opsID, ""))
		require.NoError(t, o.AcceptTask(riderID))
		require.NoError(t, o.MarkPickedUp(riderID, ""))
		require.NoError(t, o.UpdateStatus(order.Cleaning, opsID, ""))
		require.NoError(t, o.UpdateStatus(order.Ready, opsID, ""))
		require.NoError(t, o.MarkDelivered(riderID, ""))
	}
	return o
}

func TestReferralPolicy_Award(t *testing.T) {
	policy := services.NewReferralPolicy()

	t.Run("should credit five percent of the order total", func(t *testing.T) {
		o := orderWithTotal(t, 10000, true)
		ambassadorID := kernel.NewUUID()

		c, err := policy.Award(o, ambassadorID)

		require.NoError(t, err)
		require.NotNil(t, c)
		require.NoError(t, c.Validate())
		assert.True(t, c.OrderID().IsEqual(o.OrderID()))
		assert.True(t, c.AmbassadorID().IsEqual(ambassadorID))
		assert.Equal(t, int64(500), c.Amount().Cents())
		assert.Equal(t, int64(10000), c.OrderTotal().Cents())
	})

	t.Run("should round to the nearest cent", func(t *testing.T) {
		// 5% of 12.49 is 0.6245, rounds to 0.62
		o := orderWithTotal(t, 1249, true)

		c, err := policy.Award(o, kernel.NewUUID())

		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, int64(62), c.Amount().Cents())
	})

	t.Run("should record nothing when the amount rounds to zero", func(t *testing.T) {
		// 5% of 0.09 rounds to 0.00
		o := orderWithTotal(t, 9, true)

		c, err := policy.Award(o, kernel.NewUUID())

		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("should reject undelivered orders", func(t *testing.T) {
		o := orderWithTotal(t, 10000, false)

		c, err := policy.Award(o, kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "PENDING -> DELIVERED")
	})

	t.Run("should reject invalid ambassador identity", func(t *testing.T) {
		o := orderWithTotal(t, 10000, true)
		var invalidID kernel.UUID

		c, err := policy.Award(o, invalidID)

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("should reject unconstructed order", func(t *testing.T) {
		var o order.Order

		c, err := policy.Award(&o, kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}
