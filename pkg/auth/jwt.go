package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token lifetimes. Access tokens are short-lived bearer credentials; refresh
// tokens carry a jti so they can be denylisted on logout.
const (
	AccessTokenTTL  = 30 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour

	ClassAccess  = "access"
	ClassRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// secret is read per call rather than at package init, so a JWT_SECRET
// loaded from .env by main is picked up.
func secret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("insecure-development-secret")
}

// Claims are the JWT claims carried by both token classes.
type Claims struct {
	UserID      uint   `json:"user_id"`
	Email       string `json:"email"`
	IsSuperuser bool   `json:"is_superuser"`
	TokenClass  string `json:"class"`
	jwt.RegisteredClaims
}

// TokenPair bundles the two tokens issued on registration and login.
type TokenPair struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

// GenerateTokenPair issues an access and a refresh token for the user.
func GenerateTokenPair(userID uint, email string, isSuperuser bool) (*TokenPair, error) {
	access, err := generate(userID, email, isSuperuser, ClassAccess, AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := generate(userID, email, isSuperuser, ClassRefresh, RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Refresh: refresh, Access: access}, nil
}

func generate(userID uint, email string, isSuperuser bool, class string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      userID,
		Email:       email,
		IsSuperuser: isSuperuser,
		TokenClass:  class,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// ValidateAccessToken parses and validates an access token.
func ValidateAccessToken(tokenString string) (*Claims, error) {
	return parse(tokenString, ClassAccess)
}

// ParseRefreshToken parses and validates a refresh token. The returned
// claims carry the jti and expiry needed for denylisting.
func ParseRefreshToken(tokenString string) (*Claims, error) {
	return parse(tokenString, ClassRefresh)
}

func parse(tokenString, class string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenClass != class {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
