package query

import "github.com/tair/favorites-api/internal/customer/domain"

// ListCustomersQuery represents the query to list customers
type ListCustomersQuery struct {
	Limit  int
	Offset int
}

// ListCustomersHandler handles list customers query
type ListCustomersHandler struct {
	repo domain.CustomerRepository
}

// NewListCustomersHandler creates a new list customers handler
func NewListCustomersHandler(repo domain.CustomerRepository) *ListCustomersHandler {
	return &ListCustomersHandler{repo: repo}
}

// Handle executes the list customers query
func (h *ListCustomersHandler) Handle(q ListCustomersQuery) ([]domain.Customer, error) {
	return h.repo.FindAll(q.Limit, q.Offset)
}
