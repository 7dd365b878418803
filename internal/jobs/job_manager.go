// Package jobs provides the scheduled background tasks of the delivery
// backend. The only job is the notification queue drain, scheduled with
// github.com/robfig/cron/v3 at one-second resolution.
package jobs

import (
	"fmt"
	"log/slog"

	"fastfeet/internal/queue"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	notificationJob *NotificationJob
}

// NewJobManager creates a job manager owning the notification job.
func NewJobManager(worker *queue.Worker, logger *slog.Logger) *JobManager {
	return &JobManager{
		notificationJob: NewNotificationJob(worker, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationJob.Stop()
}
