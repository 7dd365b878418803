// Package courier contains the Courier entity: the person who withdraws
// packages and delivers them to recipients.
package courier

import (
	"errors"
	"net/mail"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrCourierIsNotConstructed is returned when using an improperly
// initialized Courier.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// Courier identifies a delivery person. The avatar references an uploaded
// file by id; the email address receives the workflow notifications.
type Courier struct {
	id       int64
	name     string
	email    string
	avatarID int64

	guard guard.ConstructorGuard
}

// NewCourier creates a courier with a validated name, email address, and
// avatar file reference. The id is zero until the courier is persisted.
func NewCourier(name, email string, avatarID int64) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
		c.setAvatarID(avatarID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a courier from persistence.
func RestoreCourier(id int64, name, email string, avatarID int64) (*Courier, error) {
	if id <= 0 {
		return nil, errs.NewValidationError("id")
	}

	c, err := NewCourier(name, email, avatarID)
	if err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

// Validate ensures the Courier was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier's unique identifier, zero before first persistence.
func (c *Courier) ID() int64 { return c.id }

// Name returns the courier's display name.
func (c *Courier) Name() string { return c.name }

// Email returns the address workflow notifications are sent to.
func (c *Courier) Email() string { return c.email }

// AvatarID returns the id of the uploaded avatar file.
func (c *Courier) AvatarID() int64 { return c.avatarID }

// Rename changes the courier's name, keeping it non-empty.
func (c *Courier) Rename(name string) error {
	return c.setName(name)
}

// ChangeEmail changes the courier's email address, keeping it well-formed.
func (c *Courier) ChangeEmail(email string) error {
	return c.setEmail(email)
}

// ChangeAvatar points the courier at a different uploaded avatar file.
func (c *Courier) ChangeAvatar(avatarID int64) error {
	return c.setAvatarID(avatarID)
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return errs.NewValidationError("name")
	}
	c.name = name
	return nil
}

func (c *Courier) setEmail(email string) error {
	if email == "" {
		return errs.NewValidationError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValidationErrorWithCause("email", err)
	}
	c.email = email
	return nil
}

func (c *Courier) setAvatarID(avatarID int64) error {
	if avatarID <= 0 {
		return errs.NewValidationError("avatar_id")
	}
	c.avatarID = avatarID
	return nil
}
