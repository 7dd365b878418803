package commands

import (
	"errors"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrDeleteOrderCommandIsNotConstructed is returned when a
// DeleteOrderCommand was not built via NewDeleteOrderCommand.
var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents an explicit hard delete of an order
// record, bypassing the cancellation notification.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       int64
	authenticated bool

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete the given order.
func NewDeleteOrderCommand(orderID int64, authenticated bool) (DeleteOrderCommand, error) {
	if orderID <= 0 {
		return DeleteOrderCommand{}, errs.NewValidationError("order_id")
	}

	return DeleteOrderCommand{
		orderID:       orderID,
		authenticated: authenticated,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to delete.
func (c DeleteOrderCommand) OrderID() int64 { return c.orderID }

// Authenticated reports whether the caller identity was resolved.
func (c DeleteOrderCommand) Authenticated() bool { return c.authenticated }
