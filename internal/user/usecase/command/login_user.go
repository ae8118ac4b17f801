package command

import (
	"github.com/tair/favorites-api/internal/user/domain"
	"github.com/tair/favorites-api/pkg/auth"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	User   *domain.User    `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// LoginUserHandler handles user login command
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login user command. Every failure path returns the
// same ErrIncorrectCredentials so callers cannot enumerate accounts.
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResponse, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, domain.ErrIncorrectCredentials
	}

	user, err := h.repo.FindByEmail(domain.NormalizeEmail(cmd.Email))
	if err != nil {
		return nil, domain.ErrIncorrectCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrIncorrectCredentials
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, domain.ErrIncorrectCredentials
	}

	tokens, err := auth.GenerateTokenPair(user.ID, user.Email, user.IsSuperuser)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{User: user, Tokens: tokens}, nil
}
