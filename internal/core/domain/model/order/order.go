package order

import (
	"errors"
	"fmt"
	"time"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

const (
	// PickupHourMin is the earliest pickup hour accepted, inclusive.
	PickupHourMin = 8
	// PickupHourMax is the latest pickup hour accepted, inclusive.
	// 18:00 through 18:59 are valid pickup times, 19:00 is not.
	PickupHourMax = 18
	// DailyCapacity is the maximum number of orders that may be scheduled
	// on one calendar day.
	DailyCapacity = 5
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the delivery workflow. It references the
// recipient, the courier, and the uploaded signature file by id and tracks
// the shipment from withdrawal to delivery or cancellation.
//
// Invariants:
//   - recipient, courier, and signature references must be positive ids
//   - product must be a non-empty string
//   - the start date hour must lie within the pickup window
//   - at most one of end date / canceled-at is set
type Order struct {
	id          int64
	recipientID int64
	courierID   int64
	signatureID int64
	product     string
	startDate   time.Time
	endDate     *time.Time
	canceledAt  *time.Time
	status      Status

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Withdrawn status with validation.
// The id is zero until the order is persisted.
//
// Returns a validation error when a reference id is not positive, the
// product is empty, or the start date is missing, and an InvalidWindowError
// when the pickup hour falls outside the business window.
func NewOrder(recipientID, courierID, signatureID int64, product string, startDate time.Time) (*Order, error) {
	o := &Order{
		status: Withdrawn,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setRecipientID(recipientID),
		o.setCourierID(courierID),
		o.setSignatureID(signatureID),
		o.setProduct(product),
		o.setStartDate(startDate),
	); err != nil {
		return nil, err
	}

	if err := ValidatePickupWindow(o.startDate); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-checking
// the pickup window, so historical rows created under different rules
// still load.
func RestoreOrder(
	id, recipientID, courierID, signatureID int64,
	product string,
	startDate time.Time,
	endDate, canceledAt *time.Time,
	status Status,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValidationError("id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:         id,
		status:     status,
		endDate:    endDate,
		canceledAt: canceledAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setRecipientID(recipientID),
		o.setCourierID(courierID),
		o.setSignatureID(signatureID),
		o.setProduct(product),
		o.setStartDate(startDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// ValidatePickupWindow checks that the scheduled pickup hour falls within
// [PickupHourMin, PickupHourMax]. The wall-clock hour in the start date's
// own zone is what counts, so offsets with fractional hours behave the
// same as whole-hour ones.
func ValidatePickupWindow(startDate time.Time) error {
	hour := startDate.Hour()
	if hour < PickupHourMin || hour > PickupHourMax {
		return errs.NewInvalidWindowError(hour, PickupHourMin, PickupHourMax)
	}
	return nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the order's unique identifier, zero before first persistence.
func (o *Order) ID() int64 { return o.id }

// RecipientID returns the id of the recipient the shipment is addressed to.
func (o *Order) RecipientID() int64 { return o.recipientID }

// CourierID returns the id of the courier in charge of the shipment.
func (o *Order) CourierID() int64 { return o.courierID }

// SignatureID returns the id of the uploaded signature file.
func (o *Order) SignatureID() int64 { return o.signatureID }

// Product returns the shipped product description.
func (o *Order) Product() string { return o.product }

// StartDate returns the scheduled pickup time.
func (o *Order) StartDate() time.Time { return o.startDate }

// EndDate returns the completion time, nil while the order is open.
func (o *Order) EndDate() *time.Time { return o.endDate }

// CanceledAt returns the cancellation time, nil unless the order was canceled.
func (o *Order) CanceledAt() *time.Time { return o.canceledAt }

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status { return o.status }

// Finish marks the order as delivered at the given time.
//
// Returns an OrderingError when the completion time would precede the
// scheduled pickup, which guards against finishing an order whose start
// date is still in the future. Status must be Withdrawn.
func (o *Order) Finish(now time.Time) error {
	newStatus, err := o.status.Finish()
	if err != nil {
		return err
	}

	if now.Before(o.startDate) {
		return errs.NewOrderingError(o.startDate, now)
	}

	o.endDate = &now
	o.status = newStatus
	return nil
}

// Cancel marks the order as canceled at the given time.
// Cancellation is terminal; the workflow purges the record after the
// cancellation notification has been enqueued.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.canceledAt = &now
	o.status = newStatus
	return nil
}

func (o *Order) setRecipientID(recipientID int64) error {
	if recipientID <= 0 {
		return errs.NewValidationErrorWithCause("recipient_id",
			fmt.Errorf("%d is not a positive id", recipientID))
	}
	o.recipientID = recipientID
	return nil
}

func (o *Order) setCourierID(courierID int64) error {
	if courierID <= 0 {
		return errs.NewValidationErrorWithCause("courier_id",
			fmt.Errorf("%d is not a positive id", courierID))
	}
	o.courierID = courierID
	return nil
}

func (o *Order) setSignatureID(signatureID int64) error {
	if signatureID <= 0 {
		return errs.NewValidationErrorWithCause("signature_id",
			fmt.Errorf("%d is not a positive id", signatureID))
	}
	o.signatureID = signatureID
	return nil
}

func (o *Order) setProduct(product string) error {
	if product == "" {
		return errs.NewValidationError("product")
	}
	o.product = product
	return nil
}

func (o *Order) setStartDate(startDate time.Time) error {
	if startDate.IsZero() {
		return errs.NewValidationError("start_date")
	}
	o.startDate = startDate
	return nil
}
