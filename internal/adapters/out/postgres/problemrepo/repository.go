package problemrepo

import (
	"context"

	"gorm.io/gorm"

	"fastfeet/internal/core/domain/model/problem"
)

// GormProblemRepository implements ports.ProblemRepository using GORM.
type GormProblemRepository struct {
	db *gorm.DB
}

// NewGormProblemRepository creates a new GORM problem repository.
func NewGormProblemRepository(db *gorm.DB) *GormProblemRepository {
	return &GormProblemRepository{db: db}
}

// Add saves a new problem report and returns it with its database-assigned id.
func (r *GormProblemRepository) Add(ctx context.Context, entity *problem.Problem) (*problem.Problem, error) {
	if err := entity.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether the same description has already been reported
// against the given order.
func (r *GormProblemRepository) Exists(ctx context.Context, orderID int64, description string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ProblemDTO{}).
		Where("order_id = ? AND description = ?", orderID, description).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
