package ports

import "context"

// TaskQueue accepts named notification tasks for later asynchronous
// processing. Enqueue appends a durable record and returns immediately;
// the enqueuing workflow never waits for the notification to be delivered.
//
// Delivery is at-most-once: a worker claims each task exactly once, and a
// crash between enqueue and consume loses the notification. Handler
// failures are logged and the task discarded, with no retry.
type TaskQueue interface {
	// Enqueue appends a task with the given key and a JSON-serializable
	// payload. Tasks are consumed FIFO by enqueue order.
	Enqueue(ctx context.Context, key string, payload any) error
}
