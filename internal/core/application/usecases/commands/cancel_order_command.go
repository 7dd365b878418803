package commands

import (
	"errors"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrCancelOrderCommandIsNotConstructed is returned when a
// CancelOrderCommand was not built via NewCancelOrderCommand.
var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel a shipment.
// Cancellation is destructive: after the cancellation notification is
// enqueued the order record is purged.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       int64
	authenticated bool

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the given order.
func NewCancelOrderCommand(orderID int64, authenticated bool) (CancelOrderCommand, error) {
	if orderID <= 0 {
		return CancelOrderCommand{}, errs.NewValidationError("order_id")
	}

	return CancelOrderCommand{
		orderID:       orderID,
		authenticated: authenticated,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to cancel.
func (c CancelOrderCommand) OrderID() int64 { return c.orderID }

// Authenticated reports whether the caller identity was resolved.
func (c CancelOrderCommand) Authenticated() bool { return c.authenticated }
