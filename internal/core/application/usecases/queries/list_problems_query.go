package queries

import (
	"errors"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrListProblemsQueryIsNotConstructed is returned when a
// ListProblemsQuery was not built via NewListProblemsQuery.
var ErrListProblemsQueryIsNotConstructed = errors.New(
	"ListProblemsQuery must be created via NewListProblemsQuery constructor",
)

// ListProblemsQuery retrieves a page of problem reports. A zero orderID
// lists problems across all orders; a positive one narrows the listing
// to that order.
type ListProblemsQuery struct {
	orderID int64
	page    int

	guard guard.ConstructorGuard
}

// NewListProblemsQuery creates a query for the problem listing.
func NewListProblemsQuery(orderID int64, page int) (ListProblemsQuery, error) {
	if orderID < 0 {
		return ListProblemsQuery{}, errs.NewValidationError("order_id")
	}
	if page < 1 {
		return ListProblemsQuery{}, errs.NewValidationError("page")
	}

	return ListProblemsQuery{
		orderID: orderID,
		page:    page,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProblemsQuery) Validate() error {
	return q.guard.Validate(ErrListProblemsQueryIsNotConstructed)
}

// OrderID returns the order filter, zero for all orders.
func (q ListProblemsQuery) OrderID() int64 { return q.orderID }

// Page returns the requested page, starting at one.
func (q ListProblemsQuery) Page() int { return q.page }

// ListProblemsQueryResponse is one row of the problem listing read model.
type ListProblemsQueryResponse struct {
	ID          int64
	OrderID     int64
	Product     string
	Description string
}
