package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/favorites-api/internal/user/domain"
	"github.com/tair/favorites-api/pkg/auth"
)

func loginFixture(t *testing.T) (*fakeUserRepository, *LoginUserHandler) {
	t.Helper()

	repo := newFakeUserRepository()
	registerHandler := NewRegisterUserHandler(repo, newFakeFavorites())
	_, err := registerHandler.Handle(context.Background(), RegisterUserCommand{
		Name:     "Luiza",
		Email:    "luiza@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	return repo, NewLoginUserHandler(repo)
}

func TestLoginUser(t *testing.T) {
	_, handler := loginFixture(t)

	response, err := handler.Handle(LoginUserCommand{
		Email:    "luiza@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "luiza@example.com", response.User.Email)
	require.NotNil(t, response.Tokens)
	assert.NotEmpty(t, response.Tokens.Access)
	assert.NotEmpty(t, response.Tokens.Refresh)

	claims, err := auth.ValidateAccessToken(response.Tokens.Access)
	require.NoError(t, err)
	assert.Equal(t, response.User.ID, claims.UserID)
}

func TestLoginUserNormalizesEmail(t *testing.T) {
	_, handler := loginFixture(t)

	_, err := handler.Handle(LoginUserCommand{
		Email:    "luiza@EXAMPLE.com",
		Password: "s3cret-pass",
	})
	assert.NoError(t, err)
}

// Every failure mode collapses into the same error so callers cannot probe
// which accounts exist.
func TestLoginUserFailuresAreUniform(t *testing.T) {
	repo, handler := loginFixture(t)

	tests := []struct {
		name string
		cmd  LoginUserCommand
	}{
		{"empty email", LoginUserCommand{Password: "s3cret-pass"}},
		{"empty password", LoginUserCommand{Email: "luiza@example.com"}},
		{"unknown email", LoginUserCommand{Email: "nobody@example.com", Password: "s3cret-pass"}},
		{"wrong password", LoginUserCommand{Email: "luiza@example.com", Password: "wrong"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(tt.cmd)
			assert.ErrorIs(t, err, domain.ErrIncorrectCredentials)
		})
	}

	t.Run("inactive account", func(t *testing.T) {
		user, err := repo.FindByEmail("luiza@example.com")
		require.NoError(t, err)
		user.IsActive = false

		_, err = handler.Handle(LoginUserCommand{
			Email:    "luiza@example.com",
			Password: "s3cret-pass",
		})
		assert.ErrorIs(t, err, domain.ErrIncorrectCredentials)
	})
}
