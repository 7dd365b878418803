package taskrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fastfeet/internal/queue"
)

// GormTaskQueue implements ports.TaskQueue over a task table. It is
// handed out by the unit of work bound to the workflow transaction, so
// enqueued tasks commit together with the mutation that produced them.
type GormTaskQueue struct {
	db *gorm.DB
}

// NewGormTaskQueue creates a new GORM task queue.
func NewGormTaskQueue(db *gorm.DB) *GormTaskQueue {
	return &GormTaskQueue{db: db}
}

// Enqueue appends a task with the JSON encoding of the payload.
func (q *GormTaskQueue) Enqueue(ctx context.Context, key string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	dto := TaskDTO{Key: key, Payload: raw}
	return q.db.WithContext(ctx).Create(&dto).Error
}

// GormTaskStore implements queue.Store: the claiming side of the queue,
// used by the notification worker.
type GormTaskStore struct {
	db *gorm.DB
}

// NewGormTaskStore creates a new GORM task store.
func NewGormTaskStore(db *gorm.DB) *GormTaskStore {
	return &GormTaskStore{db: db}
}

// ClaimNext removes and returns the oldest pending task, or nil when the
// queue is empty. The row lock with SKIP LOCKED keeps concurrent workers
// from claiming the same task; the delete commits before the caller
// dispatches, which makes delivery at most once.
func (s *GormTaskStore) ClaimNext(ctx context.Context) (*queue.Task, error) {
	var dto TaskDTO

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{
			Strength: clause.LockingStrengthUpdate,
			Options:  clause.LockingOptionsSkipLocked,
		}).Order("id").First(&dto).Error
		if err != nil {
			return err
		}

		return tx.Delete(&TaskDTO{}, "id = ?", dto.ID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &queue.Task{
		ID:      dto.ID,
		Key:     dto.Key,
		Payload: dto.Payload,
	}, nil
}
