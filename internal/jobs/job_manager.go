package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	kitchenBacklogJob *KitchenBacklogJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	kitchenOrdersHandler kitchenOrdersHandler,
	kitchenBacklogSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		kitchenBacklogJob: NewKitchenBacklogJob(kitchenOrdersHandler, kitchenBacklogSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.kitchenBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start kitchen backlog job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.kitchenBacklogJob.Stop()
}
