package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/file"
)

// CreateFileCommandHandler records upload metadata.
type CreateFileCommandHandler struct {
	uowFactory FileUoWFactory
}

// NewCreateFileCommandHandler creates a handler for upload records.
func NewCreateFileCommandHandler(uowFactory FileUoWFactory) CreateFileCommandHandler {
	return CreateFileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the file record and returns it with its assigned id.
func (h *CreateFileCommandHandler) Handle(ctx context.Context, cmd CreateFileCommand) (*file.File, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entity, err := file.NewFile(cmd.Name(), cmd.Path(), cmd.URL())
	if err != nil {
		return nil, err
	}

	created, err := uow.FileRepository().Add(ctx, entity)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
