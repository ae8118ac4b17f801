package query

import (
	"strings"

	"github.com/tair/favorites-api/internal/customer/domain"
)

// GetCustomerQuery fetches a customer by id, or by email when ID is zero
// (the lookup endpoint uses an email query parameter).
type GetCustomerQuery struct {
	ID    uint
	Email string
}

// GetCustomerHandler handles get customer query
type GetCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewGetCustomerHandler creates a new get customer handler
func NewGetCustomerHandler(repo domain.CustomerRepository) *GetCustomerHandler {
	return &GetCustomerHandler{repo: repo}
}

// Handle executes the get customer query
func (h *GetCustomerHandler) Handle(q GetCustomerQuery) (*domain.Customer, error) {
	if q.ID != 0 {
		return h.repo.FindByID(q.ID)
	}
	if q.Email == "" {
		return nil, domain.ErrCustomerNotFound
	}
	return h.repo.FindByEmail(strings.ToLower(strings.TrimSpace(q.Email)))
}
