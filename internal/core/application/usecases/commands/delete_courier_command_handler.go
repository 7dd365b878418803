package commands

import (
	"context"
)

// DeleteCourierCommandHandler removes courier records.
type DeleteCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewDeleteCourierCommandHandler creates a handler for courier deletion.
func NewDeleteCourierCommandHandler(uowFactory CourierUoWFactory) DeleteCourierCommandHandler {
	return DeleteCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the courier after confirming it exists.
func (h *DeleteCourierCommandHandler) Handle(ctx context.Context, cmd DeleteCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	entity, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = courierRepo.Delete(ctx, entity.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
