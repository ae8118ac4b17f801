package command

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/favorites-api/internal/user/domain"
	"github.com/tair/favorites-api/pkg/auth"
)

// UpdateUserCommand represents the command to update a user's profile.
// Empty fields are left unchanged.
type UpdateUserCommand struct {
	ID       uint
	Name     string
	Email    string
	Password string
}

// UpdateUserHandler handles user update command
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle executes the update user command
func (h *UpdateUserHandler) Handle(cmd UpdateUserCommand) (*domain.User, error) {
	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != "" {
		user.Name = cmd.Name
	}
	if cmd.Email != "" {
		email := domain.NormalizeEmail(cmd.Email)
		if err := validate.Var(email, "email"); err != nil {
			return nil, fmt.Errorf("%w: you must provide a valid email address", domain.ErrInvalidInput)
		}
		user.Email = email
	}
	if cmd.Password != "" {
		hashed, err := auth.HashPassword(cmd.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}

	if err := h.repo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already exists", domain.ErrInvalidInput)
		}
		return nil, err
	}

	return user, nil
}
