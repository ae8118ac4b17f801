package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/favorites-api/internal/customer/domain"
	"github.com/tair/favorites-api/internal/customer/usecase/command"
	"github.com/tair/favorites-api/internal/customer/usecase/query"
	userhttp "github.com/tair/favorites-api/internal/user/delivery/http"
)

// CustomerHandler handles HTTP requests for customer records
type CustomerHandler struct {
	createHandler *command.CreateCustomerHandler
	updateHandler *command.UpdateCustomerHandler
	deleteHandler *command.DeleteCustomerHandler

	getHandler  *query.GetCustomerHandler
	listHandler *query.ListCustomersHandler

	requestCounter *prometheus.CounterVec
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	createHandler *command.CreateCustomerHandler,
	updateHandler *command.UpdateCustomerHandler,
	deleteHandler *command.DeleteCustomerHandler,
	getHandler *query.GetCustomerHandler,
	listHandler *query.ListCustomersHandler,
) *CustomerHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "customer_requests_total",
			Help: "Total number of customer endpoint requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	prometheus.MustRegister(requestCounter)

	return &CustomerHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
		requestCounter: requestCounter,
	}
}

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.statusCode = code
	sw.ResponseWriter.WriteHeader(code)
}

func (h *CustomerHandler) countRequests(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(sw, r)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(sw.statusCode)).Inc()
	}
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_input", "Invalid request body")
		return
	}

	customer, err := h.createHandler.Handle(r.Context(), command.CreateCustomerCommand{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, customer)
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	customers, err := h.listHandler.Handle(query.ListCustomersQuery{Limit: limit, Offset: offset})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, customers)
}

// GetCustomer handles GET /customers/{id}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_input", "Invalid customer ID")
		return
	}

	customer, err := h.getHandler.Handle(query.GetCustomerQuery{ID: uint(id)})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, customer)
}

// LookupCustomer handles GET /customers/lookup?email=
func (h *CustomerHandler) LookupCustomer(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		h.respondError(w, http.StatusNotFound, "customer_not_found", "Email query parameter is required")
		return
	}

	customer, err := h.getHandler.Handle(query.GetCustomerQuery{Email: email})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, customer)
}

// UpdateCustomer handles PUT /customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_input", "Invalid customer ID")
		return
	}

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_input", "Invalid request body")
		return
	}

	customer, err := h.updateHandler.Handle(command.UpdateCustomerCommand{
		ID:    uint(id),
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /customers/{id}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_input", "Invalid customer ID")
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteCustomerCommand{ID: uint(id)}); err != nil {
		h.respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHandler) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		h.respondError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, domain.ErrCustomerNotFound):
		h.respondError(w, http.StatusNotFound, "customer_not_found", "Customer not found")
	default:
		h.respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func (h *CustomerHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *CustomerHandler) respondError(w http.ResponseWriter, status int, reason, message string) {
	h.respondJSON(w, status, map[string]string{"error": message, "reason": reason})
}

// RegisterRoutes registers all customer routes
func (h *CustomerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/customers", h.countRequests("/customers", userhttp.AuthMiddleware(h.CreateCustomer))).Methods("POST")
	router.HandleFunc("/customers", h.countRequests("/customers", userhttp.AuthMiddleware(h.ListCustomers))).Methods("GET")
	router.HandleFunc("/customers/lookup", h.countRequests("/customers/lookup", userhttp.AuthMiddleware(h.LookupCustomer))).Methods("GET")
	router.HandleFunc("/customers/{id:[0-9]+}", h.countRequests("/customers/{id}", userhttp.AuthMiddleware(h.GetCustomer))).Methods("GET")
	router.HandleFunc("/customers/{id:[0-9]+}", h.countRequests("/customers/{id}", userhttp.AuthMiddleware(h.UpdateCustomer))).Methods("PUT")
	router.HandleFunc("/customers/{id:[0-9]+}", h.countRequests("/customers/{id}", userhttp.AuthMiddleware(h.DeleteCustomer))).Methods("DELETE")
}
