package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenPair(t *testing.T) {
	pair, err := GenerateTokenPair(42, "user@example.com", true)
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)
}

func TestValidateAccessToken(t *testing.T) {
	pair, err := GenerateTokenPair(42, "user@example.com", true)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.True(t, claims.IsSuperuser)
	assert.Equal(t, ClassAccess, claims.TokenClass)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateAccessTokenRejectsRefreshToken(t *testing.T) {
	pair, err := GenerateTokenPair(42, "user@example.com", false)
	require.NoError(t, err)

	_, err = ValidateAccessToken(pair.Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRefreshToken(t *testing.T) {
	pair, err := GenerateTokenPair(7, "user@example.com", false)
	require.NoError(t, err)

	claims, err := ParseRefreshToken(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, ClassRefresh, claims.TokenClass)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)

	// Access tokens cannot stand in for refresh tokens
	_, err = ParseRefreshToken(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

// The signing secret must follow the environment at call time, so a value
// loaded from .env after process start is honored.
func TestTokensUseConfiguredSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "configured-secret")

	pair, err := GenerateTokenPair(1, "user@example.com", false)
	require.NoError(t, err)

	_, err = ValidateAccessToken(pair.Access)
	require.NoError(t, err)

	// Tokens signed under the old secret fail once the secret changes
	t.Setenv("JWT_SECRET", "rotated-secret")
	_, err = ValidateAccessToken(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	pair, err := GenerateTokenPair(42, "user@example.com", false)
	require.NoError(t, err)

	tampered := pair.Access[:len(pair.Access)-2] + "xx"
	_, err = ValidateAccessToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
