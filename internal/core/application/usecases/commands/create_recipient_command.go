package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrCreateRecipientCommandIsNotConstructed is returned when a
// CreateRecipientCommand was not built via NewCreateRecipientCommand.
var ErrCreateRecipientCommandIsNotConstructed = errors.New(
	"CreateRecipientCommand must be created via NewCreateRecipientCommand constructor",
)

// CreateRecipientCommand represents a request to register a recipient
// on behalf of a provider account.
type CreateRecipientCommand struct { //nolint:recvcheck //using for validation
	userID      int64
	name        string
	signatureID int64
	address     recipient.Address

	guard guard.ConstructorGuard
}

// NewCreateRecipientCommand creates a command to register a recipient.
// The address is validated through the Address value object; signatureID
// may be zero when no signature exists yet.
func NewCreateRecipientCommand(
	userID int64,
	name string,
	signatureID int64,
	street, number, details, state, city, postalCode string,
) (CreateRecipientCommand, error) {
	if userID <= 0 {
		return CreateRecipientCommand{}, errs.NewValidationError("user_id")
	}
	if name == "" {
		return CreateRecipientCommand{}, errs.NewValidationError("name")
	}
	if signatureID < 0 {
		return CreateRecipientCommand{}, errs.NewValidationError("signature_id")
	}

	address, err := recipient.NewAddress(street, number, details, state, city, postalCode)
	if err != nil {
		return CreateRecipientCommand{}, err
	}

	return CreateRecipientCommand{
		userID:      userID,
		name:        name,
		signatureID: signatureID,
		address:     address,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRecipientCommand) Validate() error {
	return c.guard.Validate(ErrCreateRecipientCommandIsNotConstructed)
}

// UserID returns the id of the account registering the recipient.
func (c CreateRecipientCommand) UserID() int64 { return c.userID }

// Name returns the recipient's name.
func (c CreateRecipientCommand) Name() string { return c.name }

// SignatureID returns the id of the signature file, zero when absent.
func (c CreateRecipientCommand) SignatureID() int64 { return c.signatureID }

// Address returns the validated delivery address.
func (c CreateRecipientCommand) Address() recipient.Address { return c.address }
