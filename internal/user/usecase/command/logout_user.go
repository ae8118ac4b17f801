package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tair/favorites-api/pkg/auth"
	"github.com/tair/favorites-api/pkg/cache"
)

// LogoutUserCommand carries the refresh token to revoke
type LogoutUserCommand struct {
	RefreshToken string
}

// LogoutUserHandler revokes refresh tokens by denylisting their jti until
// the token would have expired anyway.
type LogoutUserHandler struct {
	denylist cache.Store
}

// NewLogoutUserHandler creates a new logout user handler
func NewLogoutUserHandler(denylist cache.Store) *LogoutUserHandler {
	return &LogoutUserHandler{denylist: denylist}
}

func denylistKey(jti string) string {
	return fmt.Sprintf("token_denylist_%s", jti)
}

// Handle executes the logout command. A malformed, expired or already
// revoked token yields ErrInvalidToken; revocation is never a fatal error.
func (h *LogoutUserHandler) Handle(ctx context.Context, cmd LogoutUserCommand) error {
	claims, err := auth.ParseRefreshToken(cmd.RefreshToken)
	if err != nil {
		return auth.ErrInvalidToken
	}

	revoked, err := h.IsRevoked(ctx, claims.ID)
	if err != nil {
		return err
	}
	if revoked {
		return auth.ErrInvalidToken
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return auth.ErrInvalidToken
	}

	return h.denylist.Set(ctx, denylistKey(claims.ID), []byte("revoked"), ttl)
}

// IsRevoked reports whether a refresh token jti has been denylisted.
func (h *LogoutUserHandler) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, err := h.denylist.Get(ctx, denylistKey(jti))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, cache.ErrCacheMiss) {
		return false, nil
	}
	return false, err
}
