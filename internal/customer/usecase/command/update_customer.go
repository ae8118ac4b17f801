package command

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tair/favorites-api/internal/customer/domain"
)

// UpdateCustomerCommand represents the command to update a customer. Empty
// fields are left unchanged.
type UpdateCustomerCommand struct {
	ID    uint
	Name  string
	Email string
}

// UpdateCustomerHandler handles customer update command
type UpdateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewUpdateCustomerHandler creates a new update customer handler
func NewUpdateCustomerHandler(repo domain.CustomerRepository) *UpdateCustomerHandler {
	return &UpdateCustomerHandler{repo: repo}
}

// Handle executes the update customer command
func (h *UpdateCustomerHandler) Handle(cmd UpdateCustomerCommand) (*domain.Customer, error) {
	customer, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != "" {
		customer.Name = cmd.Name
	}
	if cmd.Email != "" {
		email := strings.ToLower(strings.TrimSpace(cmd.Email))
		if err := validate.Var(email, "email"); err != nil {
			return nil, fmt.Errorf("%w: you must provide a valid email address", domain.ErrInvalidInput)
		}
		customer.Email = email
	}

	if err := h.repo.Update(customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already exists", domain.ErrInvalidInput)
		}
		return nil, err
	}

	return customer, nil
}
