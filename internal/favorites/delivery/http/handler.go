package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/favorites-api/internal/favorites/domain"
	"github.com/tair/favorites-api/internal/favorites/usecase/command"
	"github.com/tair/favorites-api/internal/favorites/usecase/query"
	userhttp "github.com/tair/favorites-api/internal/user/delivery/http"
)

// FavoritesHandler handles HTTP requests for the favorites ledger, both for
// the authenticated user's own list and for customer lists.
type FavoritesHandler struct {
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler
	listHandler   *query.ListFavoritesHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(
	addHandler *command.AddFavoriteHandler,
	removeHandler *command.RemoveFavoriteHandler,
	listHandler *query.ListFavoritesHandler,
) *FavoritesHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_requests_total",
			Help: "Total number of favorites endpoint requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "favorites_request_duration_seconds",
			Help:    "Duration of favorites endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter, requestLatency)

	return &FavoritesHandler{
		addHandler:     addHandler,
		removeHandler:  removeHandler,
		listHandler:    listHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
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

func (h *FavoritesHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(sw, r)

		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(sw.statusCode)).Inc()
	}
}

// ownerFromRequest extracts the ledger owner: the customer from the route
// when present, otherwise the authenticated user.
func ownerFromRequest(r *http.Request) (domain.Owner, bool) {
	vars := mux.Vars(r)
	if raw, ok := vars["customer_id"]; ok {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return domain.Owner{}, false
		}
		return domain.Owner{Type: domain.OwnerTypeCustomer, ID: uint(id)}, true
	}

	userID, ok := r.Context().Value(userhttp.UserIDKey).(uint)
	if !ok {
		return domain.Owner{}, false
	}
	return domain.Owner{Type: domain.OwnerTypeUser, ID: userID}, true
}

func productIDFromRequest(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["product_id"], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// AddFavorite handles POST .../favorites/products/{product_id}
func (h *FavoritesHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid_input", "Invalid owner")
		return
	}

	productID, ok := productIDFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid_input", "Invalid product ID")
		return
	}

	_, err := h.addHandler.Handle(r.Context(), command.AddFavoriteCommand{
		OwnerType: owner.Type,
		OwnerID:   owner.ID,
		ProductID: productID,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{"message": "Product added to favorites."})
}

// RemoveFavorite handles DELETE .../favorites/products/{product_id}
func (h *FavoritesHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid_input", "Invalid owner")
		return
	}

	productID, ok := productIDFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid_input", "Invalid product ID")
		return
	}

	err := h.removeHandler.Handle(r.Context(), command.RemoveFavoriteCommand{
		OwnerType: owner.Type,
		OwnerID:   owner.ID,
		ProductID: productID,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListFavorites handles GET .../favorites/products
func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid_input", "Invalid owner")
		return
	}

	products, err := h.listHandler.Handle(r.Context(), query.ListFavoritesQuery{
		OwnerType: owner.Type,
		OwnerID:   owner.ID,
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, products)
}

func (h *FavoritesHandler) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		h.respondError(w, http.StatusNotFound, "product_not_found", "Product not found.")
	case errors.Is(err, domain.ErrOwnerNotFound):
		h.respondError(w, http.StatusNotFound, "owner_not_found", "Owner not found.")
	case errors.Is(err, domain.ErrDuplicateFavorite):
		h.respondError(w, http.StatusBadRequest, "duplicate_favorite", "Product is already in favorites.")
	case errors.Is(err, domain.ErrNotInFavorites):
		h.respondError(w, http.StatusBadRequest, "not_in_favorites", "Product is not in favorites.")
	default:
		h.respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func (h *FavoritesHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *FavoritesHandler) respondError(w http.ResponseWriter, status int, reason, message string) {
	h.respondJSON(w, status, map[string]string{"error": message, "reason": reason})
}

// RegisterRoutes registers all favorites routes. Everything requires a
// bearer token.
func (h *FavoritesHandler) RegisterRoutes(router *mux.Router) {
	// The authenticated user's own list
	router.HandleFunc("/favorites/products/{product_id}",
		h.metricsMiddleware("/favorites/products/{product_id}", userhttp.AuthMiddleware(h.AddFavorite))).Methods("POST")
	router.HandleFunc("/favorites/products/{product_id}",
		h.metricsMiddleware("/favorites/products/{product_id}", userhttp.AuthMiddleware(h.RemoveFavorite))).Methods("DELETE")
	router.HandleFunc("/favorites/products",
		h.metricsMiddleware("/favorites/products", userhttp.AuthMiddleware(h.ListFavorites))).Methods("GET")

	// Customer lists, managed on the customer's behalf
	router.HandleFunc("/customers/{customer_id}/favorites/products/{product_id}",
		h.metricsMiddleware("/customers/{customer_id}/favorites/products/{product_id}", userhttp.AuthMiddleware(h.AddFavorite))).Methods("POST")
	router.HandleFunc("/customers/{customer_id}/favorites/products/{product_id}",
		h.metricsMiddleware("/customers/{customer_id}/favorites/products/{product_id}", userhttp.AuthMiddleware(h.RemoveFavorite))).Methods("DELETE")
	router.HandleFunc("/customers/{customer_id}/favorites/products",
		h.metricsMiddleware("/customers/{customer_id}/favorites/products", userhttp.AuthMiddleware(h.ListFavorites))).Methods("GET")
}
