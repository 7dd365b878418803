package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"fastfeet/internal/queue"
)

// NotificationJob drains the notification task queue on a schedule.
// Runs every second so transactional mail leaves shortly after the
// order mutation that produced it commits.
type NotificationJob struct {
	worker *queue.Worker
	cron   *cron.Cron
	logger *slog.Logger
}

// NewNotificationJob creates the job around a worker with its handlers
// already registered.
func NewNotificationJob(worker *queue.Worker, logger *slog.Logger) *NotificationJob {
	return &NotificationJob{
		worker: worker,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "notification_job"),
	}
}

// Start begins the notification job to run every second.
func (j *NotificationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.worker.ProcessPending(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification job started (running every second)")
	return nil
}

// Stop stops the notification job.
func (j *NotificationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification job stopped")
}
