// Package problemrepo implements order problem persistence on PostgreSQL
// via GORM.
package problemrepo

import (
	"fastfeet/internal/core/domain/model/problem"
)

// ProblemDTO represents the database structure for persisting problem
// reports.
type ProblemDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index;not null"`
	Description string
}

// TableName specifies the database table name for problem entities.
func (ProblemDTO) TableName() string {
	return "orders_problems"
}

// fromDomain converts a problem entity to its database representation.
func fromDomain(entity *problem.Problem) ProblemDTO {
	return ProblemDTO{
		ID:          entity.ID(),
		OrderID:     entity.OrderID(),
		Description: entity.Description(),
	}
}

// toDomain converts a database row to a problem entity.
func toDomain(dto ProblemDTO) (*problem.Problem, error) {
	return problem.RestoreProblem(dto.ID, dto.OrderID, dto.Description)
}
