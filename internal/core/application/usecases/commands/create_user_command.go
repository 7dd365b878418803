package commands

import (
	"errors"
	"net/mail"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// minPasswordLength is the shortest accepted plaintext password.
const minPasswordLength = 6

// ErrCreateUserCommandIsNotConstructed is returned when a
// CreateUserCommand was not built via NewCreateUserCommand.
var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand represents a request to open an account.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string
	provider bool

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a user account.
// The password travels in plaintext only as far as the handler, which
// hashes it before persistence.
func NewCreateUserCommand(name, email, password string, provider bool) (CreateUserCommand, error) {
	if name == "" {
		return CreateUserCommand{}, errs.NewValidationError("name")
	}
	if email == "" {
		return CreateUserCommand{}, errs.NewValidationError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return CreateUserCommand{}, errs.NewValidationErrorWithCause("email", err)
	}
	if len(password) < minPasswordLength {
		return CreateUserCommand{}, errs.NewValidationError("password")
	}

	return CreateUserCommand{
		name:     name,
		email:    email,
		password: password,
		provider: provider,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Name returns the account holder's display name.
func (c CreateUserCommand) Name() string { return c.name }

// Email returns the login email.
func (c CreateUserCommand) Email() string { return c.email }

// Password returns the plaintext password to be hashed.
func (c CreateUserCommand) Password() string { return c.password }

// Provider reports whether the account may register recipients.
func (c CreateUserCommand) Provider() bool { return c.provider }
