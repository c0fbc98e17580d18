package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dztransit/logistics-api/internal/auth"
	"github.com/dztransit/logistics-api/internal/model"
)

func newUserService(t *testing.T) (*UserService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	issuer := auth.NewIssuer("test-secret", time.Hour)
	return NewUserService(users, issuer, zerolog.Nop()), users
}

func TestUserCreateAndLogin(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateUserInput{
		Username: "amina",
		Password: "s3cret-pass",
		Role:     model.RoleManager,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	result, err := svc.Login(ctx, "amina", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, model.RoleManager, result.User.Role)

	parser := auth.NewParser("test-secret")
	principal, err := parser.Parse(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.UserID)
	assert.Equal(t, model.RoleManager, principal.Role)
}

func TestUserLoginWrongPassword(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserInput{Username: "amina", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "amina", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserInput{Username: "amina", Password: "one"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateUserInput{Username: "amina", Password: "two"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserCreateDefaultsToAgent(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.Create(context.Background(), CreateUserInput{Username: "yanis", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAgent, user.Role)
}

func TestUserCreateRejectsUnknownRole(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Create(context.Background(), CreateUserInput{
		Username: "yanis",
		Password: "pw",
		Role:     model.Role("SUPERVISOR"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserChangePassword(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateUserInput{Username: "amina", Password: "old-pass"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, "wrong", "new-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "old-pass", "new-pass"))

	_, err = svc.Login(ctx, "amina", "new-pass")
	assert.NoError(t, err)
	_, err = svc.Login(ctx, "amina", "old-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
