package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ezwash/internal/core/application/usecases/commands"
	"ezwash/internal/core/domain/model/commission"
	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/order"
	"ezwash/internal/core/domain/model/review"
	"ezwash/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByOrderID(ctx context.Context, orderID kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetDeliveredWithoutCommission(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockCommissionRepository struct{ mock.Mock }

func (m *MockCommissionRepository) Add(ctx context.Context, c *commission.Commission) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockRiderDirectory struct{ mock.Mock }

func (m *MockRiderDirectory) ResolveActiveRider(ctx context.Context, riderID kernel.UUID) (order.RiderAssignment, error) {
	args := m.Called(ctx, riderID)
	return args.Get(0).(order.RiderAssignment), args.Error(1)
}

func (m *MockRiderDirectory) ResolveReferringAmbassador(ctx context.Context, customerID kernel.UUID) (*kernel.UUID, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kernel.UUID), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, recipient, message string, channels []ports.NotificationChannel) (map[ports.NotificationChannel]bool, error) {
	args := m.Called(ctx, recipient, message, channels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[ports.NotificationChannel]bool), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockReviewUoW struct{ MockOrderUoW }

func (m *MockReviewUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}

type MockCommissionUoW struct{ MockOrderUoW }

func (m *MockCommissionUoW) CommissionRepository() ports.CommissionRepository {
	args := m.Called()
	return args.Get(0).(ports.CommissionRepository)
}

type MockCommissionUoWFactory struct{ mock.Mock }

func (m *MockCommissionUoWFactory) Create() commands.CommissionUoW {
	args := m.Called()
	return args.Get(0).(commands.CommissionUoW)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	price, err := kernel.NewMoneyFromCents(1500)
	require.NoError(t, err)
	item, err := order.NewItem("Wash & Fold", 2, price)
	require.NoError(t, err)
	return []order.Item{item}
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("12 Adeola Odeku St", "Victoria Island", "")
	require.NoError(t, err)
	return address
}

func testPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	total, err := kernel.NewMoneyFromCents(10000)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewOrderID(), kernel.NewUUID(),
		"Ada Obi", testItems(t), total, testAddress(t), "+2348012345678")
	require.NoError(t, err)
	return o
}

// testAssignedOrder returns an order assigned to a rider and the rider's
// identity.
func testAssignedOrder(t *testing.T) (*order.Order, kernel.UUID) {
	t.Helper()
	o := testPendingOrder(t)
	riderID := kernel.NewUUID()
	rider, err := order.NewRiderAssignment(riderID, "Musa Bello")
	require.NoError(t, err)
	require.NoError(t, o.AssignRider(rider, kernel.NewUUID(), ""))
	return o, riderID
}

// testDeliveredOrder walks an order through the whole happy path.
func testDeliveredOrder(t *testing.T) (*order.Order, kernel.UUID) {
	t.Helper()
	o, riderID := testAssignedOrder(t)
	opsID := kernel.NewUUID()
	require.NoError(t, o.AcceptTask(riderID))
	require.NoError(t, o.MarkPickedUp(riderID, ""))
	require.NoError(t, o.UpdateStatus(order.Cleaning, opsID, ""))
	require.NoError(t, o.UpdateStatus(order.Ready, opsID, ""))
	require.NoError(t, o.MarkDelivered(riderID, ""))
	return o, riderID
}

// testReadyOrder stops the happy path right before delivery.
func testReadyOrder(t *testing.T) (*order.Order, kernel.UUID) {
	t.Helper()
	o, riderID := testAssignedOrder(t)
	opsID := kernel.NewUUID()
	require.NoError(t, o.AcceptTask(riderID))
	require.NoError(t, o.MarkPickedUp(riderID, ""))
	require.NoError(t, o.UpdateStatus(order.Cleaning, opsID, ""))
	require.NoError(t, o.UpdateStatus(order.Ready, opsID, ""))
	return o, riderID
}
