package courierrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fastfeet/internal/core/domain/model/courier"
	"fastfeet/internal/pkg/errs"
)

// GormCourierRepository implements ports.CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// Add saves a new courier and returns it with its database-assigned id.
func (r *GormCourierRepository) Add(ctx context.Context, entity *courier.Courier) (*courier.Courier, error) {
	if err := entity.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Update saves an existing courier to the database.
func (r *GormCourierRepository) Update(ctx context.Context, entity *courier.Courier) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	result := r.db.WithContext(ctx).Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Email", "AvatarID").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("courier", dto.ID)
	}

	return nil
}

// Get retrieves a courier by id.
func (r *GormCourierRepository) Get(ctx context.Context, id int64) (*courier.Courier, error) {
	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("courier", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsWithEmail reports whether a courier is registered under the email.
func (r *GormCourierRepository) ExistsWithEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CourierDTO{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes a courier record.
func (r *GormCourierRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&CourierDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("courier", id)
	}

	return nil
}
