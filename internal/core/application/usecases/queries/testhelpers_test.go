package queries_test

import (
	"testing"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func newTestOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()

	price, err := kernel.NewMoneyFromCents(1500)
	require.NoError(t, err)
	item, err := order.NewItem("Wash & Fold", 2, price)
	require.NoError(t, err)

	total, err := kernel.NewMoneyFromCents(3000)
	require.NoError(t, err)

	pickup, err := order.NewAddress("5 Bode Thomas St", "Surulere", "")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewOrderID(),
		customerID,
		"Ngozi Ade",
		[]order.Item{item},
		total,
		pickup,
		"+2348031112233",
	)
	require.NoError(t, err)
	return o
}

// advanceToAssigned drives a fresh order to ASSIGNED for the given rider.
func advanceToAssigned(t *testing.T, o *order.Order, riderID kernel.UUID) {
	t.Helper()

	opsID := kernel.NewUUID()
	assignment, err := order.NewRiderAssignment(riderID, "Tunde Alao")
	require.NoError(t, err)

	require.NoError(t, o.Accept(opsID, "", nil))
	require.NoError(t, o.AssignRider(assignment, opsID, ""))
}

// advanceToAccepted drives a fresh order to the rider-accepted state.
func advanceToAccepted(t *testing.T, o *order.Order, riderID kernel.UUID) {
	t.Helper()

	advanceToAssigned(t, o, riderID)
	require.NoError(t, o.AcceptTask(riderID))
}

func advanceToPickedUp(t *testing.T, o *order.Order, riderID kernel.UUID) {
	t.Helper()

	advanceToAccepted(t, o, riderID)
	require.NoError(t, o.MarkPickedUp(riderID, ""))
}

func advanceToReady(t *testing.T, o *order.Order, riderID kernel.UUID) {
	t.Helper()

	opsID := kernel.NewUUID()
	advanceToPickedUp(t, o, riderID)
	require.NoError(t, o.UpdateStatus(order.Cleaning, opsID, ""))
	require.NoError(t, o.UpdateStatus(order.Ready, opsID, ""))
}

func advanceToDelivered(t *testing.T, o *order.Order, riderID kernel.UUID) {
	t.Helper()

	advanceToReady(t, o, riderID)
	require.NoError(t, o.MarkDelivered(riderID, ""))
}
