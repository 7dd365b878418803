// Package problem contains the Problem entity: a free-text issue reported
// against one order during delivery.
package problem

import (
	"errors"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrProblemIsNotConstructed is returned when using an improperly
// initialized Problem.
var ErrProblemIsNotConstructed = errors.New("Problem must be created via NewProblem constructor")

// Problem ties a delivery issue description to one order.
// Problems of canceled orders are excluded from listings.
type Problem struct {
	id          int64
	orderID     int64
	description string

	guard guard.ConstructorGuard
}

// NewProblem creates a problem report with a validated order reference
// and description.
func NewProblem(orderID int64, description string) (*Problem, error) {
	if orderID <= 0 {
		return nil, errs.NewValidationError("order_id")
	}
	if description == "" {
		return nil, errs.NewValidationError("description")
	}

	return &Problem{
		orderID:     orderID,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreProblem reconstructs a problem report from persistence.
func RestoreProblem(id, orderID int64, description string) (*Problem, error) {
	if id <= 0 {
		return nil, errs.NewValidationError("id")
	}

	p, err := NewProblem(orderID, description)
	if err != nil {
		return nil, err
	}

	p.id = id
	return p, nil
}

// Validate ensures the Problem was properly constructed.
func (p *Problem) Validate() error {
	if p == nil {
		return ErrProblemIsNotConstructed
	}
	return p.guard.Validate(ErrProblemIsNotConstructed)
}

// ID returns the problem's unique identifier, zero before first persistence.
func (p *Problem) ID() int64 { return p.id }

// OrderID returns the id of the order the problem was reported against.
func (p *Problem) OrderID() int64 { return p.orderID }

// Description returns the reported issue text.
func (p *Problem) Description() string { return p.description }
