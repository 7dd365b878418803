// Package taskrepo implements the durable notification task queue on
// PostgreSQL via GORM. Tasks are plain rows consumed FIFO; a claim locks
// the oldest row with FOR UPDATE SKIP LOCKED and deletes it, so each
// task is handed out at most once even across concurrent workers.
package taskrepo

import (
	"time"
)

// TaskDTO represents one pending notification task.
// The payload is the JSON encoding of the enqueued value.
type TaskDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Key       string `gorm:"not null"`
	Payload   []byte `gorm:"type:jsonb"`
	CreatedAt time.Time
}

// TableName specifies the database table name for queued tasks.
func (TaskDTO) TableName() string {
	return "notification_tasks"
}
