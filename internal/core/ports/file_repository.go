package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/file"
)

// FileRepository defines the persistence contract for uploaded files.
// Other modules use Get to verify a file exists before attaching its id.
type FileRepository interface {
	// Add persists a new file record and returns the stored entity with
	// its database-assigned id.
	Add(ctx context.Context, entity *file.File) (*file.File, error)

	// Get retrieves a file record by id.
	// Returns a NotFoundError when no such file exists.
	Get(ctx context.Context, id int64) (*file.File, error)
}
