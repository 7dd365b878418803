// Package queue implements the asynchronous side of the notification job
// queue: a worker that claims durable tasks and invokes the handler
// registered for each task key.
//
// Tasks are consumed FIFO by enqueue order. A claim removes the task
// before its handler runs, so each task is observed at most once even
// across concurrent workers; a handler failure is logged and the task
// discarded. There is no retry and no dead-letter queue, and a crash
// between enqueue and consume loses the notification.
package queue

import (
	"context"
	"fmt"
	"log/slog"
)

// Task is one pending dispatch claimed from the durable store.
type Task struct {
	ID      int64
	Key     string
	Payload []byte
}

// Store is the durable backing list of the queue.
type Store interface {
	// ClaimNext atomically removes and returns the oldest pending task.
	// Returns nil when the queue is empty. Concurrent callers must never
	// receive the same task.
	ClaimNext(ctx context.Context) (*Task, error)
}

// HandlerFunc processes the payload of one claimed task.
type HandlerFunc func(ctx context.Context, payload []byte) error

// Worker drains the task store and routes each task to the handler
// registered under its key.
type Worker struct {
	store    Store
	handlers map[string]HandlerFunc
	logger   *slog.Logger
}

// NewWorker creates a worker over the given store with no handlers
// registered yet.
func NewWorker(store Store, logger *slog.Logger) *Worker {
	return &Worker{
		store:    store,
		handlers: make(map[string]HandlerFunc),
		logger:   logger.With("component", "queue_worker"),
	}
}

// Register binds a handler to a task key. Registering the same key twice
// is a programming error.
func (w *Worker) Register(key string, handler HandlerFunc) {
	if _, dup := w.handlers[key]; dup {
		panic(fmt.Sprintf("queue: handler already registered for task %q", key))
	}
	w.handlers[key] = handler
}

// ProcessPending claims and processes tasks until the store is empty.
// Handler failures are logged and the task dropped; only store failures
// stop the drain and are returned to the caller.
func (w *Worker) ProcessPending(ctx context.Context) error {
	for {
		task, err := w.store.ClaimNext(ctx)
		if err != nil {
			return fmt.Errorf("failed to claim task: %w", err)
		}
		if task == nil {
			return nil
		}

		handler, ok := w.handlers[task.Key]
		if !ok {
			w.logger.ErrorContext(ctx, "No handler registered for task, dropping",
				"task", task.Key, "task_id", task.ID)
			continue
		}

		if err := handler(ctx, task.Payload); err != nil {
			w.logger.ErrorContext(ctx, "Task handler failed, dropping task",
				"task", task.Key, "task_id", task.ID, "error", err)
		}
	}
}
