package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"fastfeet/internal/core/ports"
)

// Dispatcher turns queued notification tasks into outgoing emails.
// Each handler unmarshals its typed payload, renders the matching
// template, and hands the message to the mail transport. Errors
// propagate to the queue worker's failure path; they never reach the
// workflow call that enqueued the task.
type Dispatcher struct {
	mailer ports.Mailer
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher sending through the given mailer.
func NewDispatcher(mailer ports.Mailer, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		mailer: mailer,
		logger: logger.With("component", "notification_dispatcher"),
	}
}

// HandleCreated processes a TaskCreateMail payload.
func (d *Dispatcher) HandleCreated(ctx context.Context, payload []byte) error {
	var p CreatedPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", TaskCreateMail, err)
	}

	msg, err := ConfirmationMessage(p)
	if err != nil {
		return err
	}

	return d.send(ctx, TaskCreateMail, p.Order.ID, msg)
}

// HandleFinished processes a TaskFinishMail payload.
func (d *Dispatcher) HandleFinished(ctx context.Context, payload []byte) error {
	var p FinishedPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", TaskFinishMail, err)
	}

	msg, err := EndDateMessage(p)
	if err != nil {
		return err
	}

	return d.send(ctx, TaskFinishMail, p.Order.ID, msg)
}

// HandleCanceled processes a TaskCancellationMail payload.
func (d *Dispatcher) HandleCanceled(ctx context.Context, payload []byte) error {
	var p CanceledPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", TaskCancellationMail, err)
	}

	msg, err := CancellationMessage(p)
	if err != nil {
		return err
	}

	return d.send(ctx, TaskCancellationMail, p.Order.ID, msg)
}

func (d *Dispatcher) send(ctx context.Context, task string, orderID int64, msg ports.MailMessage) error {
	if err := d.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send %s for order %d: %w", task, orderID, err)
	}

	d.logger.InfoContext(ctx, "Notification sent", "task", task, "order_id", orderID, "to", msg.To)
	return nil
}
