// Package file contains the File entity: an uploaded asset (courier avatar
// or delivery signature) referenced by id from other entities.
package file

import (
	"errors"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrFileIsNotConstructed is returned when using an improperly
// initialized File.
var ErrFileIsNotConstructed = errors.New("File must be created via NewFile constructor")

// File records where an uploaded asset is stored and how it is reached.
// Name is the original filename, Path the stored filename on disk, and
// URL the public address the asset is served from.
type File struct {
	id   int64
	name string
	path string
	url  string

	guard guard.ConstructorGuard
}

// NewFile creates a file record with validated fields.
func NewFile(name, path, url string) (*File, error) {
	var errList []error
	if name == "" {
		errList = append(errList, errs.NewValidationError("name"))
	}
	if path == "" {
		errList = append(errList, errs.NewValidationError("path"))
	}
	if url == "" {
		errList = append(errList, errs.NewValidationError("url"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &File{
		name:  name,
		path:  path,
		url:   url,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreFile reconstructs a file record from persistence.
func RestoreFile(id int64, name, path, url string) (*File, error) {
	if id <= 0 {
		return nil, errs.NewValidationError("id")
	}

	f, err := NewFile(name, path, url)
	if err != nil {
		return nil, err
	}

	f.id = id
	return f, nil
}

// Validate ensures the File was properly constructed.
func (f *File) Validate() error {
	if f == nil {
		return ErrFileIsNotConstructed
	}
	return f.guard.Validate(ErrFileIsNotConstructed)
}

// ID returns the file's unique identifier, zero before first persistence.
func (f *File) ID() int64 { return f.id }

// Name returns the original filename of the upload.
func (f *File) Name() string { return f.name }

// Path returns the stored filename on disk.
func (f *File) Path() string { return f.path }

// URL returns the public address the file is served from.
func (f *File) URL() string { return f.url }
