package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/courier"
	"fastfeet/internal/pkg/errs"
)

// CreateCourierCommandHandler registers couriers, enforcing the unique
// email rule and the avatar file existence check.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the persisted
// courier. Fails with ConflictError when the email is taken and
// NotFoundError when the avatar file does not exist.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) (*courier.Courier, error) {
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

	courierRepo := uow.CourierRepository()

	taken, err := courierRepo.ExistsWithEmail(ctx, cmd.Email())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewConflictError("courier")
	}

	if _, err = uow.FileRepository().Get(ctx, cmd.AvatarID()); err != nil {
		return nil, err
	}

	entity, err := courier.NewCourier(cmd.Name(), cmd.Email(), cmd.AvatarID())
	if err != nil {
		return nil, err
	}

	created, err := courierRepo.Add(ctx, entity)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
