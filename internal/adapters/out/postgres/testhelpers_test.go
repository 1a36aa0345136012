package postgres_test

import (
	"testing"

	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func createPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	price, err := kernel.NewMoneyFromCents(1500)
	require.NoError(t, err)
	item, err := order.NewItem("Wash & Fold", 2, price)
	require.NoError(t, err)

	total, err := kernel.NewMoneyFromCents(3000)
	require.NoError(t, err)

	pickup, err := order.NewAddress("12 Marina Rd", "Lekki", "opposite the blue gate")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewOrderID(),
		kernel.NewUUID(),
		"Ada Obi",
		[]order.Item{item},
		total,
		pickup,
		"+2348012345678",
	)
	require.NoError(t, err)
	return o
}

// createDeliveredOrder drives a fresh order through the full happy path so
// it lands in Delivered with a complete audit trail.
func createDeliveredOrder(t *testing.T) *order.Order {
	t.Helper()

	o := createPendingOrder(t)
	opsID := kernel.NewUUID()
	riderID := kernel.NewUUID()

	assignment, err := order.NewRiderAssignment(riderID, "Musa Bello")
	require.NoError(t, err)

	require.NoError(t, o.Accept(opsID, "", nil))
	require.NoError(t, o.AssignRider(assignment, opsID, ""))
	require.NoError(t, o.AcceptTask(riderID))
	require.NoError(t, o.MarkPickedUp(riderID, ""))
	require.NoError(t, o.UpdateStatus(order.Cleaning, opsID, ""))
	require.NoError(t, o.UpdateStatus(order.Ready, opsID, ""))
	require.NoError(t, o.MarkDelivered(riderID, ""))
	return o
}
