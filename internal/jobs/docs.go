// Package jobs provides scheduled background tasks.
//
// The package implements cron-based jobs using github.com/robfig/cron/v3.
// One job runs today: CommissionReconciliationJob sweeps delivered orders
// that have no commission record and re-drives crediting through the same
// command handler the delivery path uses. The unique index on the
// commission's order identifier keeps the sweep idempotent, so the job and
// the post-delivery goroutine can race freely.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(creditHandler, orderRepo, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
