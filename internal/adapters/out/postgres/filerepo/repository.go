package filerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fastfeet/internal/core/domain/model/file"
	"fastfeet/internal/pkg/errs"
)

// GormFileRepository implements ports.FileRepository using GORM.
type GormFileRepository struct {
	db *gorm.DB
}

// NewGormFileRepository creates a new GORM file repository.
func NewGormFileRepository(db *gorm.DB) *GormFileRepository {
	return &GormFileRepository{db: db}
}

// Add saves a new file record and returns it with its database-assigned id.
func (r *GormFileRepository) Add(ctx context.Context, entity *file.File) (*file.File, error) {
	if err := entity.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Get retrieves a file record by id.
func (r *GormFileRepository) Get(ctx context.Context, id int64) (*file.File, error) {
	var dto FileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("file", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
