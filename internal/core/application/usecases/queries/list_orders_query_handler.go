package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of orders joined with their
// courier and recipient rows. Uses direct SQL for read performance.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for the order listing.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by order id and
// limited to one page of eight records.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			o.id,
			o.product,
			o.status,
			o.start_date,
			o.end_date,
			c.id,
			c.name,
			c.email,
			r.id,
			r.name,
			r.street,
			r.number,
			r.state,
			r.city,
			r.postal_code
		FROM orders o
		JOIN couriers c ON c.id = o.courier_id
		JOIN recipients r ON r.id = o.recipient_id
	`

	var conditions []string
	var args []any
	if query.Product() != "" {
		conditions = append(conditions, "o.product ~* ?")
		args = append(args, query.Product())
	}
	if query.OnlyOpen() {
		conditions = append(conditions, "o.end_date IS NULL")
		conditions = append(conditions, "o.canceled_at IS NULL")
	}
	for i, cond := range conditions {
		if i == 0 {
			sqlText += " WHERE " + cond
		} else {
			sqlText += " AND " + cond
		}
	}

	sqlText += " ORDER BY o.id LIMIT ? OFFSET ?"
	args = append(args, PageSize, (query.Page()-1)*PageSize)

	orders := make([]ListOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListOrdersQueryResponse
		var endDate sql.NullTime

		err = rows.Scan(
			&resp.ID,
			&resp.Product,
			&resp.Status,
			&resp.StartDate,
			&endDate,
			&resp.Courier.ID,
			&resp.Courier.Name,
			&resp.Courier.Email,
			&resp.Recipient.ID,
			&resp.Recipient.Name,
			&resp.Recipient.Street,
			&resp.Recipient.Number,
			&resp.Recipient.State,
			&resp.Recipient.City,
			&resp.Recipient.PostalCode,
		)
		if err != nil {
			return nil, err
		}

		if endDate.Valid {
			resp.EndDate = &endDate.Time
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
