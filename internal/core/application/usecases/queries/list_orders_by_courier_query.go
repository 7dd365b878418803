package queries

import (
	"errors"
	"time"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrListOrdersByCourierQueryIsNotConstructed is returned when a
// ListOrdersByCourierQuery was not built via NewListOrdersByCourierQuery.
var ErrListOrdersByCourierQueryIsNotConstructed = errors.New(
	"ListOrdersByCourierQuery must be created via NewListOrdersByCourierQuery constructor",
)

// ListOrdersByCourierQuery retrieves a page of one courier's shipments.
// The delivered flag splits the listing: delivered orders have an end
// date, pending ones do not.
type ListOrdersByCourierQuery struct {
	courierID int64
	page      int
	delivered bool

	guard guard.ConstructorGuard
}

// NewListOrdersByCourierQuery creates a query for a courier's shipments.
func NewListOrdersByCourierQuery(courierID int64, page int, delivered bool) (ListOrdersByCourierQuery, error) {
	if courierID <= 0 {
		return ListOrdersByCourierQuery{}, errs.NewValidationError("courier_id")
	}
	if page < 1 {
		return ListOrdersByCourierQuery{}, errs.NewValidationError("page")
	}

	return ListOrdersByCourierQuery{
		courierID: courierID,
		page:      page,
		delivered: delivered,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersByCourierQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByCourierQueryIsNotConstructed)
}

// CourierID returns the id of the courier whose orders are listed.
func (q ListOrdersByCourierQuery) CourierID() int64 { return q.courierID }

// Page returns the requested page, starting at one.
func (q ListOrdersByCourierQuery) Page() int { return q.page }

// Delivered reports whether completed instead of pending orders are listed.
func (q ListOrdersByCourierQuery) Delivered() bool { return q.delivered }

// ListOrdersByCourierQueryResponse is one row of a courier's shipment
// listing read model.
type ListOrdersByCourierQueryResponse struct {
	ID        int64
	Product   string
	Status    string
	StartDate time.Time
	EndDate   *time.Time
	Recipient OrderRecipientResponse
}
