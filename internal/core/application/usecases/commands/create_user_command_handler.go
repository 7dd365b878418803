package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/pkg/errs"
)

// CreateUserCommandHandler registers user accounts, hashing the
// password with bcrypt before it is stored.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for user registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the persisted
// user. Fails with ConflictError when the email is already registered.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
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

	userRepo := uow.UserRepository()

	taken, err := userRepo.ExistsWithEmail(ctx, cmd.Email())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewConflictError("user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	entity, err := user.NewUser(cmd.Name(), cmd.Email(), string(hash), cmd.Provider())
	if err != nil {
		return nil, err
	}

	created, err := userRepo.Add(ctx, entity)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
