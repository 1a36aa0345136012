package jobs

import (
	"context"
	"log/slog"

	"ezwash/internal/core/application/usecases/commands"
	"ezwash/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// reconciliationBatchLimit caps how many orders one sweep processes.
const reconciliationBatchLimit = 50

// CommissionReconciliationJob sweeps delivered orders with no commission
// record once a minute and re-drives crediting. The post-delivery goroutine
// is best-effort; this job is what guarantees every referred delivery
// eventually earns its commission.
type CommissionReconciliationJob struct {
	handler commands.CreditCommissionCommandHandler
	orders  ports.OrderRepository
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCommissionReconciliationJob creates the reconciliation job.
func NewCommissionReconciliationJob(
	handler commands.CreditCommissionCommandHandler,
	orders ports.OrderRepository,
	logger *slog.Logger,
) *CommissionReconciliationJob {
	return &CommissionReconciliationJob{
		handler: handler,
		orders:  orders,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "commission_reconciliation_job"),
	}
}

// Start schedules the sweep to run at the top of every minute.
func (j *CommissionReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Commission reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *CommissionReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Commission reconciliation job stopped")
}

// sweep credits every delivered-but-uncredited order in the batch. One
// failing order is logged and skipped; the rest of the batch still runs.
func (j *CommissionReconciliationJob) sweep() {
	ctx := context.Background()

	orders, err := j.orders.GetDeliveredWithoutCommission(ctx, reconciliationBatchLimit)
	if err != nil {
		j.logger.ErrorContext(ctx, "Commission reconciliation sweep failed", "error", err)
		return
	}

	for _, o := range orders {
		cmd, cmdErr := commands.NewCreditCommissionCommand(o.OrderID())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Commission reconciliation skipped order",
				"order_id", o.OrderID().String(), "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Commission reconciliation failed for order",
				"order_id", o.OrderID().String(), "error", handleErr)
		}
	}
}
