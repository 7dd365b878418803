// Package notifications renders and dispatches the transactional emails of
// the order workflow. Each lifecycle transition enqueues exactly one task:
//
//	create -> TaskCreateMail       (confirmation email to the courier)
//	finish -> TaskFinishMail       (end date email to the courier)
//	cancel -> TaskCancellationMail (cancellation email to the courier)
//
// Payloads are strongly typed per task kind and bundle the order with its
// resolved courier and recipient, so handlers never reach back into the
// store.
package notifications

import (
	"time"

	"fastfeet/internal/core/domain/model/courier"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/recipient"
)

// Task keys registered with the job queue.
const (
	TaskCreateMail       = "CreateMail"
	TaskFinishMail       = "FinishMail"
	TaskCancellationMail = "CancellationMail"
)

// OrderPayload carries the order fields the templates need.
type OrderPayload struct {
	ID        int64      `json:"id"`
	Product   string     `json:"product"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// CourierPayload carries the courier fields the templates need.
type CourierPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RecipientPayload carries the recipient name and flattened address fields.
type RecipientPayload struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Details    string `json:"details"`
	State      string `json:"state"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// CreatedPayload is the TaskCreateMail variant.
type CreatedPayload struct {
	Order     OrderPayload     `json:"order"`
	Courier   CourierPayload   `json:"courier"`
	Recipient RecipientPayload `json:"recipient"`
}

// FinishedPayload is the TaskFinishMail variant. The order's end date
// is set when this payload is built.
type FinishedPayload struct {
	Order     OrderPayload     `json:"order"`
	Courier   CourierPayload   `json:"courier"`
	Recipient RecipientPayload `json:"recipient"`
}

// CanceledPayload is the TaskCancellationMail variant.
type CanceledPayload struct {
	Order     OrderPayload     `json:"order"`
	Courier   CourierPayload   `json:"courier"`
	Recipient RecipientPayload `json:"recipient"`
}

// NewOrderPayload extracts the template fields from an order aggregate.
func NewOrderPayload(o *order.Order) OrderPayload {
	return OrderPayload{
		ID:        o.ID(),
		Product:   o.Product(),
		StartDate: o.StartDate(),
		EndDate:   o.EndDate(),
	}
}

// NewCourierPayload extracts the template fields from a courier entity.
func NewCourierPayload(c *courier.Courier) CourierPayload {
	return CourierPayload{
		ID:    c.ID(),
		Name:  c.Name(),
		Email: c.Email(),
	}
}

// NewRecipientPayload extracts the template fields from a recipient entity.
func NewRecipientPayload(r *recipient.Recipient) RecipientPayload {
	addr := r.Address()
	return RecipientPayload{
		Name:       r.Name(),
		Street:     addr.Street(),
		Number:     addr.Number(),
		Details:    addr.Details(),
		State:      addr.State(),
		City:       addr.City(),
		PostalCode: addr.PostalCode(),
	}
}
