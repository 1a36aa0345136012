package orderrepo

import (
	"context"
	"testing"

	"ezwash/internal/adapters/out/postgres/commissionrepo"
	"ezwash/internal/core/domain/model/commission"
	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/order"
	"ezwash/internal/pkg/errs"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker provides aggregate tracking for tests.
type MockAggregateTracker struct {
	tracked []kernel.UUID
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, _ any) {
	m.tracked = append(m.tracked, id)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&OrderDTO{}, &commissionrepo.CommissionDTO{})
	suite.Require().NoError(err)

	suite.repo = NewGormOrderRepository(db, &MockAggregateTracker{})
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, commissions").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGetByOrderID() {
	ctx := context.Background()
	placed := newPendingOrder(suite.T())

	err := suite.repo.Add(ctx, placed)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.GetByOrderID(ctx, placed.OrderID())
	suite.Require().NoError(err)

	suite.True(placed.OrderID().IsEqual(retrieved.OrderID()))
	suite.True(placed.CustomerID().IsEqual(retrieved.CustomerID()))
	suite.Equal(placed.CustomerName(), retrieved.CustomerName())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(order.Pending, retrieved.LoadedStatus())
	suite.Equal(placed.Phone(), retrieved.Phone())
	suite.Equal(placed.Pickup().Street(), retrieved.Pickup().Street())
	suite.Equal(placed.Pickup().Area(), retrieved.Pickup().Area())
	suite.True(placed.TotalPrice().IsEqual(retrieved.TotalPrice()))
	suite.Len(retrieved.Items(), len(placed.Items()))
	suite.Len(retrieved.History(), 1)
	suite.Nil(retrieved.Rider())
	suite.False(retrieved.ReviewSubmitted())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByOrderID_NotFound() {
	ctx := context.Background()

	_, err := suite.repo.GetByOrderID(ctx, kernel.NewOrderID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderID() {
	ctx := context.Background()
	placed := newPendingOrder(suite.T())

	suite.Require().NoError(suite.repo.Add(ctx, placed))

	err := suite.repo.Add(ctx, placed)
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AppliesTransition() {
	ctx := context.Background()
	placed := newPendingOrder(suite.T())
	suite.Require().NoError(suite.repo.Add(ctx, placed))

	loaded, err := suite.repo.GetByOrderID(ctx, placed.OrderID())
	suite.Require().NoError(err)

	err = loaded.Accept(kernel.NewUUID(), "confirmed by phone", nil)
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, loaded)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.GetByOrderID(ctx, placed.OrderID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, retrieved.Status())
	suite.Len(retrieved.History(), 2)
	suite.Equal("confirmed by phone", retrieved.History()[1].Note())
}

// TestUpdate_StaleStatusConflict loads the same row twice and applies a
// transition through each copy. The second writer's conditional update
// matches nothing and fails instead of overwriting the first.
func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleStatusConflict() {
	ctx := context.Background()
	placed := newPendingOrder(suite.T())
	suite.Require().NoError(suite.repo.Add(ctx, placed))

	first, err := suite.repo.GetByOrderID(ctx, placed.OrderID())
	suite.Require().NoError(err)
	second, err := suite.repo.GetByOrderID(ctx, placed.OrderID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Accept(kernel.NewUUID(), "", nil))
	suite.Require().NoError(suite.repo.Update(ctx, first))

	suite.Require().NoError(second.Accept(kernel.NewUUID(), "", nil))
	err = suite.repo.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrInvalidTransition)

	retrieved, err := suite.repo.GetByOrderID(ctx, placed.OrderID())
	suite.Require().NoError(err)
	suite.Len(retrieved.History(), 2, "losing writer must not append history")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetDeliveredWithoutCommission() {
	ctx := context.Background()

	credited := newDeliveredOrder(suite.T())
	uncredited := newDeliveredOrder(suite.T())
	pending := newPendingOrder(suite.T())

	suite.Require().NoError(suite.repo.Add(ctx, credited))
	suite.Require().NoError(suite.repo.Add(ctx, uncredited))
	suite.Require().NoError(suite.repo.Add(ctx, pending))

	amount := credited.TotalPrice().Percent(5)
	credit, err := commission.NewCommission(
		kernel.NewUUID(), credited.OrderID(), kernel.NewUUID(), credited.TotalPrice(), amount)
	suite.Require().NoError(err)

	commissionRepo := commissionrepo.NewGormCommissionRepository(suite.db, &MockAggregateTracker{})
	suite.Require().NoError(commissionRepo.Add(ctx, credit))

	orders, err := suite.repo.GetDeliveredWithoutCommission(ctx, 10)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 1)
	suite.True(uncredited.OrderID().IsEqual(orders[0].OrderID()))
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	price, err := kernel.NewMoneyFromCents(2000)
	require.NoError(t, err)
	item, err := order.NewItem("Duvet", 1, price)
	require.NoError(t, err)

	total, err := kernel.NewMoneyFromCents(2000)
	require.NoError(t, err)

	pickup, err := order.NewAddress("4 Adeola Close", "Surulere", "")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewOrderID(),
		kernel.NewUUID(),
		"Chidi Eze",
		[]order.Item{item},
		total,
		pickup,
		"+2348098765432",
	)
	require.NoError(t, err)
	return o
}

func newDeliveredOrder(t *testing.T) *order.Order {
	t.Helper()

	o := newPendingOrder(t)
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

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
