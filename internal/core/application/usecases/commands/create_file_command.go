package commands

import (
	"errors"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrCreateFileCommandIsNotConstructed is returned when a
// CreateFileCommand was not built via NewCreateFileCommand.
var ErrCreateFileCommandIsNotConstructed = errors.New(
	"CreateFileCommand must be created via NewCreateFileCommand constructor",
)

// CreateFileCommand represents a request to record an uploaded asset.
// The bytes are already on disk; this persists the metadata row other
// entities reference by id.
type CreateFileCommand struct { //nolint:recvcheck //using for validation
	name string
	path string
	url  string

	guard guard.ConstructorGuard
}

// NewCreateFileCommand creates a command to record an upload.
func NewCreateFileCommand(name, path, url string) (CreateFileCommand, error) {
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
		return CreateFileCommand{}, err
	}

	return CreateFileCommand{
		name:  name,
		path:  path,
		url:   url,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFileCommand) Validate() error {
	return c.guard.Validate(ErrCreateFileCommandIsNotConstructed)
}

// Name returns the original filename of the upload.
func (c CreateFileCommand) Name() string { return c.name }

// Path returns the stored filename on disk.
func (c CreateFileCommand) Path() string { return c.path }

// URL returns the public address the file is served from.
func (c CreateFileCommand) URL() string { return c.url }
