// Package recipient contains the Recipient entity and its Address value object.
package recipient

import (
	"errors"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrRecipientIsNotConstructed is returned when using an improperly
// initialized Recipient.
var ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")

// Address is the postal address a shipment is delivered to.
// It is a value object: all fields except Details are required.
type Address struct {
	street     string
	number     string
	details    string
	state      string
	city       string
	postalCode string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. Details may be empty.
func NewAddress(street, number, details, state, city, postalCode string) (Address, error) {
	required := map[string]string{
		"street":      street,
		"number":      number,
		"state":       state,
		"city":        city,
		"postal_code": postalCode,
	}
	var errList []error
	for param, value := range required {
		if value == "" {
			errList = append(errList, errs.NewValidationError(param))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return Address{}, err
	}

	return Address{
		street:     street,
		number:     number,
		details:    details,
		state:      state,
		city:       city,
		postalCode: postalCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(errors.New("Address must be created via NewAddress constructor"))
}

// Street returns the street name.
func (a Address) Street() string { return a.street }

// Number returns the street number.
func (a Address) Number() string { return a.number }

// Details returns the optional address complement.
func (a Address) Details() string { return a.details }

// State returns the state or province.
func (a Address) State() string { return a.state }

// City returns the city.
func (a Address) City() string { return a.city }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Recipient is the person a shipment is addressed to. The signature
// references the uploaded proof-of-receipt file; it is zero until a
// delivery has been signed for.
type Recipient struct {
	id          int64
	name        string
	signatureID int64
	address     Address

	guard guard.ConstructorGuard
}

// NewRecipient creates a recipient with a validated name and address.
// signatureID may be zero when no signature has been collected yet.
func NewRecipient(name string, signatureID int64, address Address) (*Recipient, error) {
	if name == "" {
		return nil, errs.NewValidationError("name")
	}
	if signatureID < 0 {
		return nil, errs.NewValidationError("signature_id")
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}

	return &Recipient{
		name:        name,
		signatureID: signatureID,
		address:     address,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreRecipient reconstructs a recipient from persistence.
func RestoreRecipient(id int64, name string, signatureID int64, address Address) (*Recipient, error) {
	if id <= 0 {
		return nil, errs.NewValidationError("id")
	}

	r, err := NewRecipient(name, signatureID, address)
	if err != nil {
		return nil, err
	}

	r.id = id
	return r, nil
}

// Validate ensures the Recipient was properly constructed.
func (r *Recipient) Validate() error {
	if r == nil {
		return ErrRecipientIsNotConstructed
	}
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// ID returns the recipient's unique identifier, zero before first persistence.
func (r *Recipient) ID() int64 { return r.id }

// Name returns the recipient's name.
func (r *Recipient) Name() string { return r.name }

// SignatureID returns the id of the signature file, zero when absent.
func (r *Recipient) SignatureID() int64 { return r.signatureID }

// Address returns the delivery address.
func (r *Recipient) Address() Address { return r.address }
