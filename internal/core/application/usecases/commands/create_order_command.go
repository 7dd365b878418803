package commands

import (
	"errors"
	"time"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a
// CreateOrderCommand was not built via NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new shipment.
// It carries the references the order will hold and the scheduled pickup
// time; the pickup-window and daily-capacity rules are enforced by the
// handler against the current state of the store.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	recipientID int64
	courierID   int64
	signatureID int64
	product     string
	startDate   time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that all reference ids are positive, the product is a
// non-empty string, and the start date carries a value.
func NewCreateOrderCommand(
	recipientID, courierID, signatureID int64,
	product string,
	startDate time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipientID(recipientID),
		cmd.setCourierID(courierID),
		cmd.setSignatureID(signatureID),
		cmd.setProduct(product),
		cmd.setStartDate(startDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// RecipientID returns the id of the recipient the shipment is addressed to.
func (c CreateOrderCommand) RecipientID() int64 { return c.recipientID }

// CourierID returns the id of the courier in charge of the shipment.
func (c CreateOrderCommand) CourierID() int64 { return c.courierID }

// SignatureID returns the id of the uploaded signature file.
func (c CreateOrderCommand) SignatureID() int64 { return c.signatureID }

// Product returns the shipped product description.
func (c CreateOrderCommand) Product() string { return c.product }

// StartDate returns the scheduled pickup time.
func (c CreateOrderCommand) StartDate() time.Time { return c.startDate }

func (c *CreateOrderCommand) setRecipientID(recipientID int64) error {
	if recipientID <= 0 {
		return errs.NewValidationError("recipient_id")
	}
	c.recipientID = recipientID
	return nil
}

func (c *CreateOrderCommand) setCourierID(courierID int64) error {
	if courierID <= 0 {
		return errs.NewValidationError("courier_id")
	}
	c.courierID = courierID
	return nil
}

func (c *CreateOrderCommand) setSignatureID(signatureID int64) error {
	if signatureID <= 0 {
		return errs.NewValidationError("signature_id")
	}
	c.signatureID = signatureID
	return nil
}

func (c *CreateOrderCommand) setProduct(product string) error {
	if product == "" {
		return errs.NewValidationError("product")
	}
	c.product = product
	return nil
}

func (c *CreateOrderCommand) setStartDate(startDate time.Time) error {
	if startDate.IsZero() {
		return errs.NewValidationError("start_date")
	}
	c.startDate = startDate
	return nil
}
