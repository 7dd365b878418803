// Package orderrepo implements order persistence on PostgreSQL via GORM,
// mapping between the order aggregate and its relational representation.
package orderrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders.
// The status is stored by name so the rows stay readable; end_date and
// canceled_at are nullable and mutually exclusive.
type OrderDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	RecipientID int64 `gorm:"index;not null"`
	CourierID   int64 `gorm:"index;not null"`
	SignatureID int64 `gorm:"not null"`
	Product     string
	StartDate   time.Time
	EndDate     *time.Time
	CanceledAt  *time.Time
	Status      string
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID(),
		RecipientID: aggregate.RecipientID(),
		CourierID:   aggregate.CourierID(),
		SignatureID: aggregate.SignatureID(),
		Product:     aggregate.Product(),
		StartDate:   aggregate.StartDate(),
		EndDate:     aggregate.EndDate(),
		CanceledAt:  aggregate.CanceledAt(),
		Status:      aggregate.Status().String(),
	}
}

// toDomain converts a database row to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.RecipientID,
		dto.CourierID,
		dto.SignatureID,
		dto.Product,
		dto.StartDate,
		dto.EndDate,
		dto.CanceledAt,
		status,
	)
}
