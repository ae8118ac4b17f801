package kafka

import "time"

// FavoriteEvent is emitted when a product is added to or removed from a
// favorites list.
type FavoriteEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	OwnerType string    `json:"owner_type"`
	OwnerID   uint      `json:"owner_id"`
	ProductID uint      `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeFavoriteAdded   = "favorite.added"
	EventTypeFavoriteRemoved = "favorite.removed"
)

// Kafka topics
const (
	TopicFavoriteAdded   = "favorite-added"
	TopicFavoriteRemoved = "favorite-removed"
)
