package commands

import (
	"errors"
	"net/mail"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrCreateCourierCommandIsNotConstructed is returned when a
// CreateCourierCommand was not built via NewCreateCourierCommand.
var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents a request to register a delivery person.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	avatarID int64

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a courier.
// Validates that the name is non-empty, the email is well-formed, and the
// avatar file reference is positive.
func NewCreateCourierCommand(name, email string, avatarID int64) (CreateCourierCommand, error) {
	cmd := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setAvatarID(avatarID),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// Name returns the courier's display name.
func (c CreateCourierCommand) Name() string { return c.name }

// Email returns the courier's notification address.
func (c CreateCourierCommand) Email() string { return c.email }

// AvatarID returns the id of the uploaded avatar file.
func (c CreateCourierCommand) AvatarID() int64 { return c.avatarID }

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return errs.NewValidationError("name")
	}
	c.name = name
	return nil
}

func (c *CreateCourierCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValidationError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValidationErrorWithCause("email", err)
	}
	c.email = email
	return nil
}

func (c *CreateCourierCommand) setAvatarID(avatarID int64) error {
	if avatarID <= 0 {
		return errs.NewValidationError("avatar_id")
	}
	c.avatarID = avatarID
	return nil
}
