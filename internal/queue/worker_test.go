package queue_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"fastfeet/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	tasks []*queue.Task
	err   error
}

func (s *fakeStore) ClaimNext(_ context.Context) (*queue.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.tasks) == 0 {
		return nil, nil
	}
	task := s.tasks[0]
	s.tasks = s.tasks[1:]
	return task, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWorker_ProcessPending(t *testing.T) {
	t.Run("drains_tasks_in_fifo_order", func(t *testing.T) {
		store := &fakeStore{tasks: []*queue.Task{
			{ID: 1, Key: "mail", Payload: []byte("a")},
			{ID: 2, Key: "mail", Payload: []byte("b")},
		}}

		var seen []string
		w := queue.NewWorker(store, testLogger())
		w.Register("mail", func(_ context.Context, payload []byte) error {
			seen = append(seen, string(payload))
			return nil
		})

		require.NoError(t, w.ProcessPending(context.Background()))
		assert.Equal(t, []string{"a", "b"}, seen)
		assert.Empty(t, store.tasks)
	})

	t.Run("handler_failure_drops_task_and_continues", func(t *testing.T) {
		store := &fakeStore{tasks: []*queue.Task{
			{ID: 1, Key: "mail", Payload: []byte("a")},
			{ID: 2, Key: "mail", Payload: []byte("b")},
		}}

		var calls int
		w := queue.NewWorker(store, testLogger())
		w.Register("mail", func(_ context.Context, _ []byte) error {
			calls++
			if calls == 1 {
				return errors.New("smtp down")
			}
			return nil
		})

		require.NoError(t, w.ProcessPending(context.Background()))
		assert.Equal(t, 2, calls)
	})

	t.Run("unknown_key_is_dropped", func(t *testing.T) {
		store := &fakeStore{tasks: []*queue.Task{
			{ID: 1, Key: "unregistered", Payload: []byte("a")},
		}}

		w := queue.NewWorker(store, testLogger())

		require.NoError(t, w.ProcessPending(context.Background()))
		assert.Empty(t, store.tasks)
	})

	t.Run("store_failure_stops_the_drain", func(t *testing.T) {
		store := &fakeStore{err: errors.New("connection lost")}

		w := queue.NewWorker(store, testLogger())

		err := w.ProcessPending(context.Background())
		assert.ErrorContains(t, err, "connection lost")
	})

	t.Run("empty_store_returns_immediately", func(t *testing.T) {
		w := queue.NewWorker(&fakeStore{}, testLogger())
		require.NoError(t, w.ProcessPending(context.Background()))
	})
}

func TestWorker_Register_DuplicatePanics(t *testing.T) {
	w := queue.NewWorker(&fakeStore{}, testLogger())
	w.Register("mail", func(_ context.Context, _ []byte) error { return nil })

	assert.Panics(t, func() {
		w.Register("mail", func(_ context.Context, _ []byte) error { return nil })
	})
}
