package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/courier"
)

// CourierRepository defines the persistence contract for couriers.
type CourierRepository interface {
	// Add persists a new courier and returns the stored entity with its
	// database-assigned id.
	Add(ctx context.Context, entity *courier.Courier) (*courier.Courier, error)

	// Update persists changes to an existing courier.
	Update(ctx context.Context, entity *courier.Courier) error

	// Get retrieves a courier by id.
	// Returns a NotFoundError when no such courier exists.
	Get(ctx context.Context, id int64) (*courier.Courier, error)

	// ExistsWithEmail reports whether a courier is already registered
	// under the given email address.
	ExistsWithEmail(ctx context.Context, email string) (bool, error)

	// Delete removes a courier record.
	Delete(ctx context.Context, id int64) error
}
