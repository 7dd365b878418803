package commands

import (
	"errors"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrDeleteCourierCommandIsNotConstructed is returned when a
// DeleteCourierCommand was not built via NewDeleteCourierCommand.
var ErrDeleteCourierCommandIsNotConstructed = errors.New(
	"DeleteCourierCommand must be created via NewDeleteCourierCommand constructor",
)

// DeleteCourierCommand represents a request to remove a courier record.
type DeleteCourierCommand struct { //nolint:recvcheck //using for validation
	courierID int64

	guard guard.ConstructorGuard
}

// NewDeleteCourierCommand creates a command to delete the given courier.
func NewDeleteCourierCommand(courierID int64) (DeleteCourierCommand, error) {
	if courierID <= 0 {
		return DeleteCourierCommand{}, errs.NewValidationError("courier_id")
	}

	return DeleteCourierCommand{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCourierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCourierCommandIsNotConstructed)
}

// CourierID returns the id of the courier to delete.
func (c DeleteCourierCommand) CourierID() int64 { return c.courierID }
