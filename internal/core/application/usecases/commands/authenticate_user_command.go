package commands

import (
	"errors"
	"net/mail"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrAuthenticateUserCommandIsNotConstructed is returned when an
// AuthenticateUserCommand was not built via NewAuthenticateUserCommand.
var ErrAuthenticateUserCommandIsNotConstructed = errors.New(
	"AuthenticateUserCommand must be created via NewAuthenticateUserCommand constructor",
)

// AuthenticateUserCommand represents a login attempt.
type AuthenticateUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserCommand creates a command to verify credentials.
func NewAuthenticateUserCommand(email, password string) (AuthenticateUserCommand, error) {
	if email == "" {
		return AuthenticateUserCommand{}, errs.NewValidationError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return AuthenticateUserCommand{}, errs.NewValidationErrorWithCause("email", err)
	}
	if password == "" {
		return AuthenticateUserCommand{}, errs.NewValidationError("password")
	}

	return AuthenticateUserCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthenticateUserCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateUserCommandIsNotConstructed)
}

// Email returns the login email.
func (c AuthenticateUserCommand) Email() string { return c.email }

// Password returns the plaintext password to check.
func (c AuthenticateUserCommand) Password() string { return c.password }
