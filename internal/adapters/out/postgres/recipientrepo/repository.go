package recipientrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"
)

// GormRecipientRepository implements ports.RecipientRepository using GORM.
type GormRecipientRepository struct {
	db *gorm.DB
}

// NewGormRecipientRepository creates a new GORM recipient repository.
func NewGormRecipientRepository(db *gorm.DB) *GormRecipientRepository {
	return &GormRecipientRepository{db: db}
}

// Add saves a new recipient and returns it with its database-assigned id.
func (r *GormRecipientRepository) Add(
	ctx context.Context, entity *recipient.Recipient,
) (*recipient.Recipient, error) {
	if err := entity.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Get retrieves a recipient by id.
func (r *GormRecipientRepository) Get(ctx context.Context, id int64) (*recipient.Recipient, error) {
	var dto RecipientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("recipient", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a recipient with the same name and full address
// is already registered.
func (r *GormRecipientRepository) Exists(
	ctx context.Context, name string, address recipient.Address,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&RecipientDTO{}).
		Where("name = ? AND street = ? AND number = ? AND state = ? AND city = ? AND postal_code = ?",
			name, address.Street(), address.Number(), address.State(),
			address.City(), address.PostalCode()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
