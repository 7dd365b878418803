package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/problem"
)

// ProblemRepository defines the persistence contract for order problems.
type ProblemRepository interface {
	// Add persists a new problem report and returns the stored entity
	// with its database-assigned id.
	Add(ctx context.Context, entity *problem.Problem) (*problem.Problem, error)

	// Exists reports whether the same description has already been
	// reported against the given order.
	Exists(ctx context.Context, orderID int64, description string) (bool, error)
}
