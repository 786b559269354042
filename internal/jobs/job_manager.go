// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. Jobs are wired and controlled through
// JobManager:
//
//	jobManager := jobs.NewJobManager(listOrdersHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"

	"purchasing/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	overdueDeliveryJob *OverdueDeliveryJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(listOrdersHandler queries.ListOrdersQueryHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		overdueDeliveryJob: NewOverdueDeliveryJob(listOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs. Returns an error if any job fails to
// start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueDeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue delivery job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueDeliveryJob.Stop()
}
