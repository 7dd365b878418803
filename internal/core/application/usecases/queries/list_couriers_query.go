package queries

import (
	"errors"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrListCouriersQueryIsNotConstructed is returned when a
// ListCouriersQuery was not built via NewListCouriersQuery.
var ErrListCouriersQueryIsNotConstructed = errors.New(
	"ListCouriersQuery must be created via NewListCouriersQuery constructor",
)

// ListCouriersQuery retrieves a page of couriers, optionally filtered by
// a case-insensitive name pattern.
type ListCouriersQuery struct {
	page int
	name string

	guard guard.ConstructorGuard
}

// NewListCouriersQuery creates a query for the courier listing.
func NewListCouriersQuery(page int, name string) (ListCouriersQuery, error) {
	if page < 1 {
		return ListCouriersQuery{}, errs.NewValidationError("page")
	}

	return ListCouriersQuery{
		page:  page,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersQueryIsNotConstructed)
}

// Page returns the requested page, starting at one.
func (q ListCouriersQuery) Page() int { return q.page }

// Name returns the name filter pattern, empty for no filter.
func (q ListCouriersQuery) Name() string { return q.name }

// ListCouriersQueryResponse is one row of the courier listing read model.
// The avatar URL is resolved through the files table.
type ListCouriersQueryResponse struct {
	ID        int64
	Name      string
	Email     string
	AvatarURL string
}
