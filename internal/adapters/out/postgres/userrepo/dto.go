// Package userrepo implements user account persistence on PostgreSQL via
// GORM.
package userrepo

import (
	"fastfeet/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user accounts.
// Only the bcrypt hash of the password is stored.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Provider     bool
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user entity to its database representation.
func fromDomain(entity *user.User) UserDTO {
	return UserDTO{
		ID:           entity.ID(),
		Name:         entity.Name(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		Provider:     entity.Provider(),
	}
}

// toDomain converts a database row to a user entity.
func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(dto.ID, dto.Name, dto.Email, dto.PasswordHash, dto.Provider)
}
