// Package filerepo implements uploaded file metadata persistence on
// PostgreSQL via GORM.
package filerepo

import (
	"fastfeet/internal/core/domain/model/file"
)

// FileDTO represents the database structure for persisting file records.
type FileDTO struct {
	ID   int64 `gorm:"primaryKey;autoIncrement"`
	Name string
	Path string `gorm:"uniqueIndex"`
	URL  string
}

// TableName specifies the database table name for file entities.
func (FileDTO) TableName() string {
	return "files"
}

// fromDomain converts a file entity to its database representation.
func fromDomain(entity *file.File) FileDTO {
	return FileDTO{
		ID:   entity.ID(),
		Name: entity.Name(),
		Path: entity.Path(),
		URL:  entity.URL(),
	}
}

// toDomain converts a database row to a file entity.
func toDomain(dto FileDTO) (*file.File, error) {
	return file.RestoreFile(dto.ID, dto.Name, dto.Path, dto.URL)
}
