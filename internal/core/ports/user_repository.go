package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user and returns the stored entity with its
	// database-assigned id.
	Add(ctx context.Context, entity *user.User) (*user.User, error)

	// Get retrieves a user by id.
	// Returns a NotFoundError when no such user exists.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByEmail retrieves a user by login email.
	// Returns a NotFoundError when no such user exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// ExistsWithEmail reports whether a user is already registered under
	// the given email address.
	ExistsWithEmail(ctx context.Context, email string) (bool, error)
}
