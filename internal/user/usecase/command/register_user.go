package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	favdomain "github.com/tair/favorites-api/internal/favorites/domain"
	"github.com/tair/favorites-api/internal/user/domain"
	"github.com/tair/favorites-api/pkg/auth"
)

var validate = validator.New()

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Name        string
	Email       string
	Password    string
	IsStaff     bool
	IsSuperuser bool
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo      domain.UserRepository
	favorites favdomain.FavoriteRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository, favorites favdomain.FavoriteRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo, favorites: favorites}
}

// Handle executes the register user command. Creating the user also creates
// the user's favorites list. That happens here as an explicit step so the
// "every owner has exactly one list" invariant is visible, not a side
// effect of persistence.
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*domain.User, error) {
	// Validation, with a distinct message per failure
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: user must have a name", domain.ErrInvalidInput)
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("%w: user must have an email address", domain.ErrInvalidInput)
	}

	email := domain.NormalizeEmail(cmd.Email)
	if err := validate.Var(email, "email"); err != nil {
		return nil, fmt.Errorf("%w: you must provide a valid email address", domain.ErrInvalidInput)
	}

	if cmd.IsSuperuser {
		if cmd.Password == "" {
			return nil, fmt.Errorf("%w: superuser must have a password", domain.ErrInvalidInput)
		}
		if !cmd.IsStaff {
			return nil, fmt.Errorf("%w: superuser must have is_staff=true", domain.ErrInvalidInput)
		}
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("%w: user must have a password", domain.ErrInvalidInput)
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:        cmd.Name,
		Email:       email,
		Password:    hashedPassword,
		IsActive:    true,
		IsStaff:     cmd.IsStaff,
		IsSuperuser: cmd.IsSuperuser,
	}

	if err := h.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already exists", domain.ErrInvalidInput)
		}
		return nil, err
	}

	owner := favdomain.Owner{Type: favdomain.OwnerTypeUser, ID: user.ID}
	if _, err := h.favorites.EnsureForOwner(ctx, owner); err != nil {
		return nil, fmt.Errorf("failed to create favorites list: %w", err)
	}

	return user, nil
}
