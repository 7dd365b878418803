package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"
)

// AuthenticateUserCommandHandler verifies login credentials against the
// stored bcrypt hash. It only reads, so it talks to the repository
// directly without a unit of work.
type AuthenticateUserCommandHandler struct {
	userRepository ports.UserRepository
}

// NewAuthenticateUserCommandHandler creates a handler for credential checks.
func NewAuthenticateUserCommandHandler(userRepository ports.UserRepository) AuthenticateUserCommandHandler {
	return AuthenticateUserCommandHandler{
		userRepository: userRepository,
	}
}

// Handle returns the matching user when the credentials are valid.
// Unknown emails and wrong passwords both fail with an AuthError so the
// response does not reveal which part was wrong.
func (h *AuthenticateUserCommandHandler) Handle(
	ctx context.Context, cmd AuthenticateUserCommand,
) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	entity, err := h.userRepository.GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.NewAuthErrorWithCause(err)
		}
		return nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(entity.PasswordHash()), []byte(cmd.Password())); err != nil {
		return nil, errs.NewAuthErrorWithCause(err)
	}

	return entity, nil
}
