// Package recipientrepo implements recipient persistence on PostgreSQL
// via GORM. The address value object is embedded into the recipients
// table as flat columns.
package recipientrepo

import (
	"fastfeet/internal/core/domain/model/recipient"
)

// RecipientDTO represents the database structure for persisting recipients.
type RecipientDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"index"`
	SignatureID int64
	Street      string
	Number      string
	Details     string
	State       string
	City        string
	PostalCode  string
}

// TableName specifies the database table name for recipient entities.
func (RecipientDTO) TableName() string {
	return "recipients"
}

// fromDomain converts a recipient entity to its database representation.
func fromDomain(entity *recipient.Recipient) RecipientDTO {
	addr := entity.Address()
	return RecipientDTO{
		ID:          entity.ID(),
		Name:        entity.Name(),
		SignatureID: entity.SignatureID(),
		Street:      addr.Street(),
		Number:      addr.Number(),
		Details:     addr.Details(),
		State:       addr.State(),
		City:        addr.City(),
		PostalCode:  addr.PostalCode(),
	}
}

// toDomain converts a database row to a recipient entity.
func toDomain(dto RecipientDTO) (*recipient.Recipient, error) {
	addr, err := recipient.NewAddress(
		dto.Street, dto.Number, dto.Details, dto.State, dto.City, dto.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	return recipient.RestoreRecipient(dto.ID, dto.Name, dto.SignatureID, addr)
}
