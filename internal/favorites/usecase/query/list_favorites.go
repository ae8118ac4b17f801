package query

import (
	"context"
	"fmt"

	"github.com/tair/favorites-api/internal/favorites/domain"
)

// ListFavoritesQuery represents the query for an owner's favorite products
type ListFavoritesQuery struct {
	OwnerType string
	OwnerID   uint
}

// ListFavoritesHandler handles the list favorites query
type ListFavoritesHandler struct {
	owners    domain.OwnerDirectory
	favorites domain.FavoriteRepository
}

// NewListFavoritesHandler creates a new list favorites handler
func NewListFavoritesHandler(owners domain.OwnerDirectory, favorites domain.FavoriteRepository) *ListFavoritesHandler {
	return &ListFavoritesHandler{owners: owners, favorites: favorites}
}

// Handle returns all products on the owner's favorites list, in insertion
// order. A fresh owner gets an empty slice, never nil.
func (h *ListFavoritesHandler) Handle(ctx context.Context, q ListFavoritesQuery) ([]domain.Product, error) {
	owner := domain.Owner{Type: q.OwnerType, ID: q.OwnerID}

	exists, err := h.owners.Exists(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owner: %w", err)
	}
	if !exists {
		return nil, domain.ErrOwnerNotFound
	}

	favorite, err := h.favorites.EnsureForOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	return h.favorites.ListProducts(ctx, favorite.ID)
}
