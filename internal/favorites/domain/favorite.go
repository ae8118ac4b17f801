package domain

import (
	"context"
	"time"
)

// Owner types. A favorites list belongs to either a registered user or a
// managed customer record; both are addressed through the same ledger.
const (
	OwnerTypeUser     = "user"
	OwnerTypeCustomer = "customer"
)

// Owner identifies the holder of a favorites list.
type Owner struct {
	Type string
	ID   uint
}

// Favorite is an owner's single favorites list. The composite unique index
// guarantees one list per owner even under concurrent creation.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OwnerType string    `json:"owner_type" gorm:"not null;uniqueIndex:idx_favorites_owner"`
	OwnerID   uint      `json:"owner_id" gorm:"not null;uniqueIndex:idx_favorites_owner"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "favorites"
}

// FavoriteProduct is the join row between a favorites list and a product.
// The composite unique index rejects duplicate entries before the row is
// written; a concurrent duplicate add loses the race at the constraint.
type FavoriteProduct struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FavoriteID uint      `json:"favorite_id" gorm:"not null;index;uniqueIndex:idx_favorite_product"`
	ProductID  uint      `json:"product_id" gorm:"not null;index;uniqueIndex:idx_favorite_product"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name
func (FavoriteProduct) TableName() string {
	return "favorite_products"
}

// FavoriteRepository defines the contract for the favorites ledger.
type FavoriteRepository interface {
	// EnsureForOwner returns the owner's favorites list, creating it if
	// absent. Safe to call concurrently for the same owner.
	EnsureForOwner(ctx context.Context, owner Owner) (*Favorite, error)
	// AddProduct inserts a join row; returns ErrDuplicateFavorite when the
	// pair already exists.
	AddProduct(ctx context.Context, favoriteID, productID uint) (*FavoriteProduct, error)
	// RemoveProduct deletes the join row; returns ErrNotInFavorites when
	// there is none.
	RemoveProduct(ctx context.Context, favoriteID, productID uint) error
	// ListProducts returns the products on the list in insertion order.
	ListProducts(ctx context.Context, favoriteID uint) ([]Product, error)
	CountEntries(ctx context.Context, favoriteID uint) (int64, error)
}

// OwnerDirectory checks that the owner of a favorites operation exists.
type OwnerDirectory interface {
	Exists(ctx context.Context, owner Owner) (bool, error)
}
