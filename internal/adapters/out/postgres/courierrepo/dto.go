// Package courierrepo implements courier persistence on PostgreSQL via
// GORM.
package courierrepo

import (
	"fastfeet/internal/core/domain/model/courier"
)

// CourierDTO represents the database structure for persisting couriers.
// The email carries a unique index; the avatar references the files table.
type CourierDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"index"`
	Email    string `gorm:"uniqueIndex"`
	AvatarID int64
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier entity to its database representation.
func fromDomain(entity *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:       entity.ID(),
		Name:     entity.Name(),
		Email:    entity.Email(),
		AvatarID: entity.AvatarID(),
	}
}

// toDomain converts a database row to a courier entity.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	return courier.RestoreCourier(dto.ID, dto.Name, dto.Email, dto.AvatarID)
}
