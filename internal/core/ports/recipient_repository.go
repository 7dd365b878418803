package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/recipient"
)

// RecipientRepository defines the persistence contract for recipients.
type RecipientRepository interface {
	// Add persists a new recipient and returns the stored entity with its
	// database-assigned id.
	Add(ctx context.Context, entity *recipient.Recipient) (*recipient.Recipient, error)

	// Get retrieves a recipient by id.
	// Returns a NotFoundError when no such recipient exists.
	Get(ctx context.Context, id int64) (*recipient.Recipient, error)

	// Exists reports whether a recipient with the same name and full
	// address is already registered.
	Exists(ctx context.Context, name string, address recipient.Address) (bool, error)
}
