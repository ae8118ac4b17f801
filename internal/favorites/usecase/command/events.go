package command

import (
	"context"

	"github.com/tair/favorites-api/kafka"
)

// EventPublisher emits ledger change events. Publishing is best effort: a
// nil publisher or a broker failure never fails the request.
type EventPublisher interface {
	PublishFavoriteAdded(ctx context.Context, event kafka.FavoriteEvent) error
	PublishFavoriteRemoved(ctx context.Context, event kafka.FavoriteEvent) error
}
