package jobs

import (
	"fmt"
	"log/slog"

	"ezwash/internal/core/application/usecases/commands"
	"ezwash/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	commissionReconciliationJob *CommissionReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	creditCommissionHandler commands.CreditCommissionCommandHandler,
	orders ports.OrderRepository,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		commissionReconciliationJob: NewCommissionReconciliationJob(
			creditCommissionHandler, orders, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.commissionReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start commission reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.commissionReconciliationJob.Stop()
}
