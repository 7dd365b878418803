package commands

import (
	"errors"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrReportProblemCommandIsNotConstructed is returned when a
// ReportProblemCommand was not built via NewReportProblemCommand.
var ErrReportProblemCommandIsNotConstructed = errors.New(
	"ReportProblemCommand must be created via NewReportProblemCommand constructor",
)

// ReportProblemCommand represents a delivery issue reported against
// one order.
type ReportProblemCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	description string

	guard guard.ConstructorGuard
}

// NewReportProblemCommand creates a command to file a problem report.
func NewReportProblemCommand(orderID int64, description string) (ReportProblemCommand, error) {
	if orderID <= 0 {
		return ReportProblemCommand{}, errs.NewValidationError("order_id")
	}
	if description == "" {
		return ReportProblemCommand{}, errs.NewValidationError("description")
	}

	return ReportProblemCommand{
		orderID:     orderID,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportProblemCommand) Validate() error {
	return c.guard.Validate(ErrReportProblemCommandIsNotConstructed)
}

// OrderID returns the id of the order the problem concerns.
func (c ReportProblemCommand) OrderID() int64 { return c.orderID }

// Description returns the reported issue text.
func (c ReportProblemCommand) Description() string { return c.description }
