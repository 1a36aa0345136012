package cmd

import (
	"log/slog"

	"ezwash/internal/adapters/out/postgres"
	"ezwash/internal/core/application/usecases/commands"
	"ezwash/internal/core/application/usecases/queries"
	"ezwash/internal/core/domain/services"
	"ezwash/internal/core/ports"
	"ezwash/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires every use case from the shared infrastructure:
// the gorm connection, the unit of work factory, the user directory, and
// the notification publisher. No globals; main owns the lifetimes.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	directory  ports.RiderDirectory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	directory ports.RiderDirectory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  directory,
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.directory)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.orderUoWFactory(), c.directory, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAcceptTaskCommandHandler() commands.AcceptTaskCommandHandler {
	return commands.NewAcceptTaskCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkPickedUpCommandHandler() commands.MarkPickedUpCommandHandler {
	return commands.NewMarkPickedUpCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	return commands.NewUpdateStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreditCommissionCommandHandler() commands.CreditCommissionCommandHandler {
	var f commands.CommissionUoWFactory = FuncCommissionUoWFactory(func() commands.CommissionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreditCommissionCommandHandler(f, c.directory, services.NewReferralPolicy())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(
		c.orderUoWFactory(),
		c.CreateCreditCommissionCommandHandler(),
		c.notifier,
		c.logger,
	)
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRiderQueueQueryHandler() queries.GetRiderQueueQueryHandler {
	return queries.NewGetRiderQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAdminOrdersQueryHandler() queries.GetAdminOrdersQueryHandler {
	return queries.NewGetAdminOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPublicReviewsQueryHandler() queries.GetPublicReviewsQueryHandler {
	return queries.NewGetPublicReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAdminReviewsQueryHandler() queries.GetAdminReviewsQueryHandler {
	return queries.NewGetAdminReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOperationsStatsQueryHandler() queries.GetOperationsStatsQueryHandler {
	return queries.NewGetOperationsStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAmbassadorEarningsQueryHandler() queries.GetAmbassadorEarningsQueryHandler {
	return queries.NewGetAmbassadorEarningsQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs. The reconciliation job reads
// through a unit of work with no open transaction, which binds the
// repository to the main connection.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCreditCommissionCommandHandler(),
		c.uowFactory.Create().OrderRepository(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncCommissionUoWFactory func() commands.CommissionUoW

func (f FuncCommissionUoWFactory) Create() commands.CommissionUoW {
	return f()
}
