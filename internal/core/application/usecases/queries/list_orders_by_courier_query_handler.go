package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"fastfeet/internal/pkg/errs"
)

// ListOrdersByCourierQueryHandler retrieves one courier's shipments,
// split into pending and delivered listings.
type ListOrdersByCourierQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersByCourierQueryHandler creates a handler for courier
// shipment listings.
func NewListOrdersByCourierQueryHandler(db *gorm.DB) ListOrdersByCourierQueryHandler {
	return ListOrdersByCourierQueryHandler{db: db}
}

// Handle executes the listing query. The courier must exist; canceled
// orders never appear because cancellation purges the record.
func (h ListOrdersByCourierQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByCourierQuery,
) ([]ListOrdersByCourierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var courierCount int64
	err := h.db.WithContext(ctx).Raw(
		"SELECT count(*) FROM couriers WHERE id = ?", query.CourierID(),
	).Scan(&courierCount).Error
	if err != nil {
		return nil, err
	}
	if courierCount == 0 {
		return nil, errs.NewNotFoundError("courier", query.CourierID())
	}

	endDateCondition := "o.end_date IS NULL"
	if query.Delivered() {
		endDateCondition = "o.end_date IS NOT NULL"
	}

	orders := make([]ListOrdersByCourierQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.product,
			o.status,
			o.start_date,
			o.end_date,
			r.id,
			r.name,
			r.street,
			r.number,
			r.state,
			r.city,
			r.postal_code
		FROM orders o
		JOIN recipients r ON r.id = o.recipient_id
		WHERE o.courier_id = ?
		AND o.canceled_at IS NULL
		AND `+endDateCondition+`
		ORDER BY o.id LIMIT ? OFFSET ?
	`, query.CourierID(), PageSize, (query.Page()-1)*PageSize).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListOrdersByCourierQueryResponse
		var endDate sql.NullTime

		err = rows.Scan(
			&resp.ID,
			&resp.Product,
			&resp.Status,
			&resp.StartDate,
			&endDate,
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
