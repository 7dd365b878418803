// Package ports defines the contracts between the application core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and returns the stored aggregate with its
	// database-assigned id.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns a NotFoundError when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// HasDuplicate reports whether an order with the same recipient,
	// courier, and product already exists. This is the coarse
	// duplicate-submission guard of the create workflow, not a uniqueness
	// constraint on all fields.
	HasDuplicate(ctx context.Context, recipientID, courierID int64, product string) (bool, error)

	// CountByDay counts orders whose start date falls within the calendar
	// day of the given time, from start-of-day inclusive to end-of-day.
	CountByDay(ctx context.Context, day time.Time) (int64, error)

	// Delete removes an order record. Used by destructive cancellation
	// and by the explicit hard-delete operation.
	Delete(ctx context.Context, id int64) error
}
