package domain

import "errors"

var (
	// ErrInvalidInput wraps all registration and update validation
	// failures; the wrapped message stays specific per field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIncorrectCredentials is deliberately uniform: a missing account,
	// an inactive account and a wrong password are indistinguishable to
	// the caller.
	ErrIncorrectCredentials = errors.New("incorrect credentials")

	ErrUserNotFound = errors.New("user not found")
)
