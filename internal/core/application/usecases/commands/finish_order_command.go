package commands

import (
	"errors"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrFinishOrderCommandIsNotConstructed is returned when a
// FinishOrderCommand was not built via NewFinishOrderCommand.
var ErrFinishOrderCommandIsNotConstructed = errors.New(
	"FinishOrderCommand must be created via NewFinishOrderCommand constructor",
)

// FinishOrderCommand represents a request to complete a delivery.
// The authenticated flag carries whether the HTTP layer resolved a caller
// identity; the handler rejects unauthenticated calls before any side
// effect.
type FinishOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       int64
	authenticated bool

	guard guard.ConstructorGuard
}

// NewFinishOrderCommand creates a command to finish the given order.
func NewFinishOrderCommand(orderID int64, authenticated bool) (FinishOrderCommand, error) {
	if orderID <= 0 {
		return FinishOrderCommand{}, errs.NewValidationError("order_id")
	}

	return FinishOrderCommand{
		orderID:       orderID,
		authenticated: authenticated,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to finish.
func (c FinishOrderCommand) OrderID() int64 { return c.orderID }

// Authenticated reports whether the caller identity was resolved.
func (c FinishOrderCommand) Authenticated() bool { return c.authenticated }
