package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// ListCouriersQueryHandler retrieves pages of couriers with their
// resolved avatar URLs.
type ListCouriersQueryHandler struct {
	db *gorm.DB
}

// NewListCouriersQueryHandler creates a handler for the courier listing.
func NewListCouriersQueryHandler(db *gorm.DB) ListCouriersQueryHandler {
	return ListCouriersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by name and
// limited to one page of eight records.
func (h ListCouriersQueryHandler) Handle(
	ctx context.Context,
	query ListCouriersQuery,
) ([]ListCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			c.id,
			c.name,
			c.email,
			f.url
		FROM couriers c
		LEFT JOIN files f ON f.id = c.avatar_id
	`

	var args []any
	if query.Name() != "" {
		sqlText += " WHERE c.name ~* ?"
		args = append(args, query.Name())
	}

	sqlText += " ORDER BY c.name LIMIT ? OFFSET ?"
	args = append(args, PageSize, (query.Page()-1)*PageSize)

	couriers := make([]ListCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListCouriersQueryResponse
		var avatarURL sql.NullString

		err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&resp.Email,
			&avatarURL,
		)
		if err != nil {
			return nil, err
		}

		resp.AvatarURL = avatarURL.String
		couriers = append(couriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
