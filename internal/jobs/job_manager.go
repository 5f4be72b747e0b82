package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	oversellReportJob *OversellReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	products ports.ProductRepository,
	notifier ports.Notifier,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		oversellReportJob: NewOversellReportJob(products, notifier, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.oversellReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start oversell report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.oversellReportJob.Stop()
}
