package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/pkg/errs"
)

func restoredUser(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u, err := user.RestoreUser(1, "Admin", "admin@fastfeet.com", string(hash), true)
	require.NoError(t, err)
	return u
}

func TestAuthenticateUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAuthenticateUserCommand("admin@fastfeet.com", "123456")
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "admin@fastfeet.com").
		Return(restoredUser(t, "123456"), nil).Once()

	h := commands.NewAuthenticateUserCommandHandler(repo)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ID())
	repo.AssertExpectations(t)
}

func TestAuthenticateUserCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAuthenticateUserCommand("admin@fastfeet.com", "wrong-pass")

	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "admin@fastfeet.com").
		Return(restoredUser(t, "123456"), nil).Once()

	h := commands.NewAuthenticateUserCommandHandler(repo)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAuth)
}

func TestAuthenticateUserCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAuthenticateUserCommand("ghost@fastfeet.com", "123456")

	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ghost@fastfeet.com").
		Return(nil, errs.NewNotFoundError("user", "ghost@fastfeet.com")).Once()

	h := commands.NewAuthenticateUserCommandHandler(repo)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAuth)
}

func TestNewAuthenticateUserCommand_Validation(t *testing.T) {
	_, err := commands.NewAuthenticateUserCommand("", "123456")
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = commands.NewAuthenticateUserCommand("not-an-email", "123456")
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = commands.NewAuthenticateUserCommand("admin@fastfeet.com", "")
	require.ErrorIs(t, err, errs.ErrValidation)
}
