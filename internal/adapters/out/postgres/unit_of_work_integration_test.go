package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "ezwash/internal/adapters/out/postgres"
	"ezwash/internal/adapters/out/postgres/commissionrepo"
	"ezwash/internal/adapters/out/postgres/orderrepo"
	"ezwash/internal/adapters/out/postgres/reviewrepo"
	"ezwash/internal/core/domain/model/commission"
	"ezwash/internal/core/domain/model/kernel"
	"ezwash/internal/core/domain/model/order"
	"ezwash/internal/core/domain/model/review"
	"ezwash/internal/core/ports"
	"ezwash/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts the PostgreSQL container, connects, and migrates the
// schema. TranslateError is on, as in production, so unique-index
// violations surface as gorm.ErrDuplicatedKey.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&reviewrepo.ReviewDTO{},
		&commissionrepo.CommissionDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, reviews, commissions").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.ReviewRepository(), "First instance should provide review repository")
	suite.NotNil(uow1.CommissionRepository(), "First instance should provide commission repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createPendingOrder(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := uow.OrderRepository().GetByOrderID(ctx, testOrder.OrderID())
	suite.Require().NoError(err)
	suite.True(testOrder.OrderID().IsEqual(retrieved.OrderID()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().GetByOrderID(ctx, testOrder.OrderID())
	suite.Require().NoError(err)
	suite.True(testOrder.OrderID().IsEqual(retrieved.OrderID()))
	suite.Equal(order.Pending, retrieved.Status())
}

// TestUnitOfWork_MultiRepositoryTransaction covers the review submission
// shape: the review insert and the order's review-submitted flag land in
// one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()

	delivered := createDeliveredOrder(suite.T())
	seed := suite.factory.Create()
	suite.Require().NoError(seed.OrderRepository().Add(ctx, delivered))

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	loaded, err := uow.OrderRepository().GetByOrderID(ctx, delivered.OrderID())
	suite.Require().NoError(err)

	err = loaded.MarkReviewSubmitted()
	suite.Require().NoError(err)

	testReview, err := review.NewReview(
		kernel.NewUUID(), loaded.OrderID(), loaded.CustomerID(), 5, "spotless")
	suite.Require().NoError(err)

	err = uow.ReviewRepository().Add(ctx, testReview)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Update(ctx, loaded)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().GetByOrderID(ctx, delivered.OrderID())
	suite.Require().NoError(err)
	suite.True(retrieved.ReviewSubmitted())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createPendingOrder(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().GetByOrderID(ctx, testOrder.OrderID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().GetByOrderID(ctx, testOrder.OrderID())
	suite.Require().Error(err, "Order should not exist after rollback")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUnitOfWork_DuplicateReviewRejected verifies the unique index on the
// review's order identifier classifies as ObjectAlreadyExistsError.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateReviewRejected() {
	ctx := context.Background()

	delivered := createDeliveredOrder(suite.T())
	seed := suite.factory.Create()
	suite.Require().NoError(seed.OrderRepository().Add(ctx, delivered))

	first, err := review.NewReview(
		kernel.NewUUID(), delivered.OrderID(), delivered.CustomerID(), 4, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().ReviewRepository().Add(ctx, first))

	second, err := review.NewReview(
		kernel.NewUUID(), delivered.OrderID(), delivered.CustomerID(), 2, "changed my mind")
	suite.Require().NoError(err)

	err = suite.factory.Create().ReviewRepository().Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

// TestUnitOfWork_DuplicateCommissionRejected verifies crediting the same
// order twice trips the unique index, which is what makes the delivery
// path and the reconciliation sweep idempotent together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateCommissionRejected() {
	ctx := context.Background()

	delivered := createDeliveredOrder(suite.T())
	seed := suite.factory.Create()
	suite.Require().NoError(seed.OrderRepository().Add(ctx, delivered))

	ambassadorID := kernel.NewUUID()
	amount := delivered.TotalPrice().Percent(5)

	first, err := commission.NewCommission(
		kernel.NewUUID(), delivered.OrderID(), ambassadorID, delivered.TotalPrice(), amount)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().CommissionRepository().Add(ctx, first))

	second, err := commission.NewCommission(
		kernel.NewUUID(), delivered.OrderID(), ambassadorID, delivered.TotalPrice(), amount)
	suite.Require().NoError(err)

	err = suite.factory.Create().CommissionRepository().Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
