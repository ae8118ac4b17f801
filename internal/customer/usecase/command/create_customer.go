package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/tair/favorites-api/internal/customer/domain"
	favdomain "github.com/tair/favorites-api/internal/favorites/domain"
)

var validate = validator.New()

// CreateCustomerCommand represents the command to create a customer
type CreateCustomerCommand struct {
	Name  string
	Email string
}

// CreateCustomerHandler handles customer creation command
type CreateCustomerHandler struct {
	repo      domain.CustomerRepository
	favorites favdomain.FavoriteRepository
}

// NewCreateCustomerHandler creates a new create customer handler
func NewCreateCustomerHandler(repo domain.CustomerRepository, favorites favdomain.FavoriteRepository) *CreateCustomerHandler {
	return &CreateCustomerHandler{repo: repo, favorites: favorites}
}

// Handle executes the create customer command. Like user registration, the
// favorites list is created explicitly right after the owner row.
func (h *CreateCustomerHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*domain.Customer, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: customer must have a name", domain.ErrInvalidInput)
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("%w: customer must have an email address", domain.ErrInvalidInput)
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if err := validate.Var(email, "email"); err != nil {
		return nil, fmt.Errorf("%w: you must provide a valid email address", domain.ErrInvalidInput)
	}

	customer := &domain.Customer{Name: cmd.Name, Email: email}
	if err := h.repo.Create(customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already exists", domain.ErrInvalidInput)
		}
		return nil, err
	}

	owner := favdomain.Owner{Type: favdomain.OwnerTypeCustomer, ID: customer.ID}
	if _, err := h.favorites.EnsureForOwner(ctx, owner); err != nil {
		return nil, fmt.Errorf("failed to create favorites list: %w", err)
	}

	return customer, nil
}
