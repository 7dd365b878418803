package commands

import (
	"errors"
	"net/mail"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrUpdateCourierCommandIsNotConstructed is returned when an
// UpdateCourierCommand was not built via NewUpdateCourierCommand.
var ErrUpdateCourierCommandIsNotConstructed = errors.New(
	"UpdateCourierCommand must be created via NewUpdateCourierCommand constructor",
)

// UpdateCourierCommand represents a partial update of a courier.
// Empty name/email and a zero avatar id mean "leave unchanged".
type UpdateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID int64
	name      string
	email     string
	avatarID  int64

	guard guard.ConstructorGuard
}

// NewUpdateCourierCommand creates a command to update a courier.
// Provided fields are validated; omitted fields stay zero.
func NewUpdateCourierCommand(courierID int64, name, email string, avatarID int64) (UpdateCourierCommand, error) {
	if courierID <= 0 {
		return UpdateCourierCommand{}, errs.NewValidationError("courier_id")
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return UpdateCourierCommand{}, errs.NewValidationErrorWithCause("email", err)
		}
	}
	if avatarID < 0 {
		return UpdateCourierCommand{}, errs.NewValidationError("avatar_id")
	}

	return UpdateCourierCommand{
		courierID: courierID,
		name:      name,
		email:     email,
		avatarID:  avatarID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierCommandIsNotConstructed)
}

// CourierID returns the id of the courier to update.
func (c UpdateCourierCommand) CourierID() int64 { return c.courierID }

// Name returns the new name, empty when unchanged.
func (c UpdateCourierCommand) Name() string { return c.name }

// Email returns the new email, empty when unchanged.
func (c UpdateCourierCommand) Email() string { return c.email }

// AvatarID returns the new avatar file id, zero when unchanged.
func (c UpdateCourierCommand) AvatarID() int64 { return c.avatarID }
