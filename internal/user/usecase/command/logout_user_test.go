package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/favorites-api/pkg/auth"
	"github.com/tair/favorites-api/pkg/cache"
)

func TestLogoutUser(t *testing.T) {
	ctx := context.Background()
	handler := NewLogoutUserHandler(cache.NewMemoryStore())

	pair, err := auth.GenerateTokenPair(1, "luiza@example.com", false)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, LogoutUserCommand{RefreshToken: pair.Refresh}))

	claims, err := auth.ParseRefreshToken(pair.Refresh)
	require.NoError(t, err)
	revoked, err := handler.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestLogoutUserTwiceFails(t *testing.T) {
	ctx := context.Background()
	handler := NewLogoutUserHandler(cache.NewMemoryStore())

	pair, err := auth.GenerateTokenPair(1, "luiza@example.com", false)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, LogoutUserCommand{RefreshToken: pair.Refresh}))

	err = handler.Handle(ctx, LogoutUserCommand{RefreshToken: pair.Refresh})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutUserRejectsMalformedToken(t *testing.T) {
	handler := NewLogoutUserHandler(cache.NewMemoryStore())

	err := handler.Handle(context.Background(), LogoutUserCommand{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutUserRejectsAccessToken(t *testing.T) {
	handler := NewLogoutUserHandler(cache.NewMemoryStore())

	pair, err := auth.GenerateTokenPair(1, "luiza@example.com", false)
	require.NoError(t, err)

	err = handler.Handle(context.Background(), LogoutUserCommand{RefreshToken: pair.Access})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestIsRevokedUnknownJTI(t *testing.T) {
	handler := NewLogoutUserHandler(cache.NewMemoryStore())

	revoked, err := handler.IsRevoked(context.Background(), "unknown-jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}
