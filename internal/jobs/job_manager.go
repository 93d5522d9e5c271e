package jobs

import (
	"fmt"
	"log/slog"

	"canteen/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	incomeReportJob *IncomeReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	incomeReportHandler queries.GetIncomeReportQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		incomeReportJob: NewIncomeReportJob(incomeReportHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.incomeReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start income report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.incomeReportJob.Stop()
}
