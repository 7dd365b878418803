package order

import (
	"fmt"

	"fastfeet/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Withdrawn ──> Delivered (finish)
//	Withdrawn ──> Canceled  (cancel)
//
// Delivered and Canceled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Withdrawn is the initial status when an order is created.
	// The package is waiting to be picked up and delivered by the courier.
	Withdrawn

	// Delivered indicates the order has been completed and the end date set.
	// This is a final state with no further transitions allowed.
	Delivered

	// Canceled indicates the order has been canceled.
	// This is a final state; the record is purged after the
	// cancellation notification is enqueued.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Withdrawn: "withdrawn",
		Delivered: "delivered",
		Canceled:  "canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Withdrawn: "withdrawn",
		Delivered: "delivered",
		Canceled:  "canceled",
	}
}

// StatusFromString parses a persisted status value.
// Returns an error for anything that is not a valid status name.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValidationErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValidationErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Finish transitions the status to Delivered.
//
// Valid transitions:
//   - Withdrawn -> Delivered
//
// Returns (0, error) when the order is already delivered or canceled.
func (s Status) Finish() (Status, error) {
	if s != Withdrawn {
		return 0, errs.NewValidationErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to finish", s))
	}
	return Delivered, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Withdrawn -> Canceled
//
// Returns (0, error) when the order is already delivered or canceled.
func (s Status) Cancel() (Status, error) {
	if s != Withdrawn {
		return 0, errs.NewValidationErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}
	return Canceled, nil
}
