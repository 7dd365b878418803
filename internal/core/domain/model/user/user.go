// Package user contains the User entity used for authentication.
// A user flagged as provider is entitled to register recipients.
package user

import (
	"errors"
	"net/mail"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when using an improperly
// initialized User.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is an account that can open sessions against the API.
// The password is stored only as a bcrypt hash.
type User struct {
	id           int64
	name         string
	email        string
	passwordHash string
	provider     bool

	guard guard.ConstructorGuard
}

// NewUser creates a user with a validated name, email, and password hash.
func NewUser(name, email, passwordHash string, provider bool) (*User, error) {
	if name == "" {
		return nil, errs.NewValidationError("name")
	}
	if email == "" {
		return nil, errs.NewValidationError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errs.NewValidationErrorWithCause("email", err)
	}
	if passwordHash == "" {
		return nil, errs.NewValidationError("password")
	}

	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		provider:     provider,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id int64, name, email, passwordHash string, provider bool) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValidationError("id")
	}

	u, err := NewUser(name, email, passwordHash, provider)
	if err != nil {
		return nil, err
	}

	u.id = id
	return u, nil
}

// Validate ensures the User was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier, zero before first persistence.
func (u *User) ID() int64 { return u.id }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Email returns the user's login email.
func (u *User) Email() string { return u.email }

// PasswordHash returns the bcrypt hash of the user's password.
func (u *User) PasswordHash() string { return u.passwordHash }

// Provider reports whether the user may register recipients.
func (u *User) Provider() bool { return u.provider }
