package orderrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and returns it with its database-assigned id.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select forces nullable columns to be written even when nil.
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("RecipientID", "CourierID", "SignatureID", "Product",
			"StartDate", "EndDate", "CanceledAt", "Status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("order", dto.ID)
	}

	return nil
}

// Get retrieves an order by id.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// HasDuplicate reports whether an order with the same recipient, courier,
// and product already exists.
func (r *GormOrderRepository) HasDuplicate(
	ctx context.Context, recipientID, courierID int64, product string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("recipient_id = ? AND courier_id = ? AND product = ?", recipientID, courierID, product).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CountByDay counts orders whose start date falls within the calendar day
// of the given time.
func (r *GormOrderRepository) CountByDay(ctx context.Context, day time.Time) (int64, error) {
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	nextDay := startOfDay.AddDate(0, 0, 1)

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("start_date >= ? AND start_date < ?", startOfDay, nextDay).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Delete removes an order record.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("order", id)
	}

	return nil
}
