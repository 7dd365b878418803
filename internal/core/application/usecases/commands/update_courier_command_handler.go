package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/courier"
	"fastfeet/internal/pkg/errs"
)

// UpdateCourierCommandHandler applies partial courier updates with the
// same uniqueness and file-existence rules as registration.
type UpdateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewUpdateCourierCommandHandler creates a handler for courier updates.
func NewUpdateCourierCommandHandler(uowFactory CourierUoWFactory) UpdateCourierCommandHandler {
	return UpdateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the updated courier.
// A changed email must not collide with another courier; a changed avatar
// must reference an existing file.
func (h *UpdateCourierCommandHandler) Handle(ctx context.Context, cmd UpdateCourierCommand) (*courier.Courier, error) {
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

	entity, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	if email := cmd.Email(); email != "" && email != entity.Email() {
		taken, existsErr := courierRepo.ExistsWithEmail(ctx, email)
		if existsErr != nil {
			return nil, existsErr
		}
		if taken {
			return nil, errs.NewConflictError("courier")
		}
		if err = entity.ChangeEmail(email); err != nil {
			return nil, err
		}
	}

	if name := cmd.Name(); name != "" {
		if err = entity.Rename(name); err != nil {
			return nil, err
		}
	}

	if avatarID := cmd.AvatarID(); avatarID != 0 {
		if _, err = uow.FileRepository().Get(ctx, avatarID); err != nil {
			return nil, err
		}
		if err = entity.ChangeAvatar(avatarID); err != nil {
			return nil, err
		}
	}

	if err = courierRepo.Update(ctx, entity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entity, nil
}
