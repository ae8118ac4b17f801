package command

import (
	"context"
	"fmt"

	"github.com/tair/favorites-api/internal/favorites/domain"
	"github.com/tair/favorites-api/kafka"
	"github.com/tair/favorites-api/pkg/logger"
)

// RemoveFavoriteCommand represents the command to remove a product from an
// owner's favorites list
type RemoveFavoriteCommand struct {
	OwnerType string
	OwnerID   uint
	ProductID uint
}

// RemoveFavoriteHandler handles the remove favorite command
type RemoveFavoriteHandler struct {
	owners    domain.OwnerDirectory
	products  domain.ProductRepository
	favorites domain.FavoriteRepository
	events    EventPublisher
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(
	owners domain.OwnerDirectory,
	products domain.ProductRepository,
	favorites domain.FavoriteRepository,
	events EventPublisher,
) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{
		owners:    owners,
		products:  products,
		favorites: favorites,
		events:    events,
	}
}

// Handle deletes the ledger entry for (owner, product). The product must
// already be known locally; removal never touches the product row itself.
func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
	owner := domain.Owner{Type: cmd.OwnerType, ID: cmd.OwnerID}

	exists, err := h.owners.Exists(ctx, owner)
	if err != nil {
		return fmt.Errorf("failed to resolve owner: %w", err)
	}
	if !exists {
		return domain.ErrOwnerNotFound
	}

	product, err := h.products.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return err
	}

	favorite, err := h.favorites.EnsureForOwner(ctx, owner)
	if err != nil {
		return err
	}

	if err := h.favorites.RemoveProduct(ctx, favorite.ID, product.ID); err != nil {
		return err
	}

	if h.events != nil {
		event := kafka.FavoriteEvent{
			OwnerType: owner.Type,
			OwnerID:   owner.ID,
			ProductID: product.ID,
		}
		if err := h.events.PublishFavoriteRemoved(ctx, event); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to publish favorite.removed event")
		}
	}

	return nil
}
