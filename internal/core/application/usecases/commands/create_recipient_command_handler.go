package commands

import (
	"context"
	"errors"

	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"
)

// errNotProvider signals a registration attempt by a regular account.
var errNotProvider = errors.New("user is not a provider")

// CreateRecipientCommandHandler registers recipients. Only provider
// accounts may register them, and the same person at the same address
// is rejected as a duplicate.
type CreateRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

// NewCreateRecipientCommandHandler creates a handler for recipient registration.
func NewCreateRecipientCommandHandler(uowFactory RecipientUoWFactory) CreateRecipientCommandHandler {
	return CreateRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the persisted
// recipient. The acting user must exist and hold the provider flag; a
// non-zero signature must reference an existing file.
func (h *CreateRecipientCommandHandler) Handle(
	ctx context.Context, cmd CreateRecipientCommand,
) (*recipient.Recipient, error) {
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

	actor, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if !actor.Provider() {
		return nil, errs.NewValidationErrorWithCause("user_id", errNotProvider)
	}

	recipientRepo := uow.RecipientRepository()

	exists, err := recipientRepo.Exists(ctx, cmd.Name(), cmd.Address())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewConflictError("recipient")
	}

	if signatureID := cmd.SignatureID(); signatureID != 0 {
		if _, err = uow.FileRepository().Get(ctx, signatureID); err != nil {
			return nil, err
		}
	}

	entity, err := recipient.NewRecipient(cmd.Name(), cmd.SignatureID(), cmd.Address())
	if err != nil {
		return nil, err
	}

	created, err := recipientRepo.Add(ctx, entity)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
