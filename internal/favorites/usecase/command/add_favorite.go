package command

import (
	"context"
	"fmt"

	"github.com/tair/favorites-api/internal/favorites/domain"
	"github.com/tair/favorites-api/kafka"
	"github.com/tair/favorites-api/pkg/logger"
)

// AddFavoriteCommand represents the command to add a product to an owner's
// favorites list
type AddFavoriteCommand struct {
	OwnerType string
	OwnerID   uint
	ProductID uint
}

// AddFavoriteHandler handles the add favorite command
type AddFavoriteHandler struct {
	owners    domain.OwnerDirectory
	resolver  domain.ProductResolver
	favorites domain.FavoriteRepository
	events    EventPublisher
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(
	owners domain.OwnerDirectory,
	resolver domain.ProductResolver,
	favorites domain.FavoriteRepository,
	events EventPublisher,
) *AddFavoriteHandler {
	return &AddFavoriteHandler{
		owners:    owners,
		resolver:  resolver,
		favorites: favorites,
		events:    events,
	}
}

// Handle resolves the product, ensures the owner's list exists and inserts
// the ledger entry. A pair that already exists fails with
// ErrDuplicateFavorite; the check and the insert are backed by the unique
// constraint, so concurrent duplicate adds cannot both succeed.
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) (*domain.Product, error) {
	owner := domain.Owner{Type: cmd.OwnerType, ID: cmd.OwnerID}

	exists, err := h.owners.Exists(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owner: %w", err)
	}
	if !exists {
		return nil, domain.ErrOwnerNotFound
	}

	product, err := h.resolver.Resolve(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	favorite, err := h.favorites.EnsureForOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	if _, err := h.favorites.AddProduct(ctx, favorite.ID, product.ID); err != nil {
		return nil, err
	}

	if h.events != nil {
		event := kafka.FavoriteEvent{
			OwnerType: owner.Type,
			OwnerID:   owner.ID,
			ProductID: product.ID,
		}
		if err := h.events.PublishFavoriteAdded(ctx, event); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to publish favorite.added event")
		}
	}

	return product, nil
}
