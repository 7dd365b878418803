// Package queries contains read operations for retrieving system state.
// Queries bypass the domain model and read optimized projections straight
// from the database, returning flat read models for the HTTP layer.
//
// All listings are paginated with a fixed page size of eight records.
package queries

import (
	"errors"
	"time"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// PageSize is the fixed number of records per listing page.
const PageSize = 8

// ErrListOrdersQueryIsNotConstructed is returned when a ListOrdersQuery
// was not built via NewListOrdersQuery.
var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves a page of orders with their courier and
// recipient details. The product filter is a case-insensitive regular
// expression match; onlyOpen keeps orders that have neither been
// delivered nor canceled.
type ListOrdersQuery struct {
	page     int
	product  string
	onlyOpen bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the order listing.
// Page numbering starts at one.
func NewListOrdersQuery(page int, product string, onlyOpen bool) (ListOrdersQuery, error) {
	if page < 1 {
		return ListOrdersQuery{}, errs.NewValidationError("page")
	}

	return ListOrdersQuery{
		page:     page,
		product:  product,
		onlyOpen: onlyOpen,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Page returns the requested page, starting at one.
func (q ListOrdersQuery) Page() int { return q.page }

// Product returns the product filter pattern, empty for no filter.
func (q ListOrdersQuery) Product() string { return q.product }

// OnlyOpen reports whether delivered and canceled orders are excluded.
func (q ListOrdersQuery) OnlyOpen() bool { return q.onlyOpen }

// OrderCourierResponse carries the courier columns of an order row.
type OrderCourierResponse struct {
	ID    int64
	Name  string
	Email string
}

// OrderRecipientResponse carries the recipient columns of an order row.
type OrderRecipientResponse struct {
	ID         int64
	Name       string
	Street     string
	Number     string
	State      string
	City       string
	PostalCode string
}

// ListOrdersQueryResponse is one row of the order listing read model.
type ListOrdersQueryResponse struct {
	ID        int64
	Product   string
	Status    string
	StartDate time.Time
	EndDate   *time.Time
	Courier   OrderCourierResponse
	Recipient OrderRecipientResponse
}
