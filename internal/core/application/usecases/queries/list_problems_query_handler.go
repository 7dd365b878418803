package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListProblemsQueryHandler retrieves pages of problem reports joined
// with the product of the order they concern.
type ListProblemsQueryHandler struct {
	db *gorm.DB
}

// NewListProblemsQueryHandler creates a handler for the problem listing.
func NewListProblemsQueryHandler(db *gorm.DB) ListProblemsQueryHandler {
	return ListProblemsQueryHandler{db: db}
}

// Handle executes the listing query. The join drops reports whose order
// has been purged, and canceled orders are excluded outright.
func (h ListProblemsQueryHandler) Handle(
	ctx context.Context,
	query ListProblemsQuery,
) ([]ListProblemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			p.id,
			p.order_id,
			o.product,
			p.description
		FROM orders_problems p
		JOIN orders o ON o.id = p.order_id
		WHERE o.canceled_at IS NULL
	`

	var args []any
	if query.OrderID() != 0 {
		sqlText += " AND p.order_id = ?"
		args = append(args, query.OrderID())
	}

	sqlText += " ORDER BY p.id LIMIT ? OFFSET ?"
	args = append(args, PageSize, (query.Page()-1)*PageSize)

	problems := make([]ListProblemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListProblemsQueryResponse

		err = rows.Scan(
			&resp.ID,
			&resp.OrderID,
			&resp.Product,
			&resp.Description,
		)
		if err != nil {
			return nil, err
		}

		problems = append(problems, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return problems, nil
}
