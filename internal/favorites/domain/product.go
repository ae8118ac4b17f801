package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Product mirrors an entry of the remote catalog. The id is assigned by the
// catalog, never generated locally. Price is fixed-point decimal and is
// serialized as a string, so it round-trips without float drift. ReviewScore
// is a pointer: when unset the field is omitted from JSON entirely.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Title       string          `json:"title" gorm:"not null"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(7,2);not null"`
	ReviewScore *int            `json:"review_score,omitempty" gorm:"type:smallint"`
	Link        string          `json:"link"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductRepository defines the contract for local product rows.
type ProductRepository interface {
	// FindByID returns ErrProductNotFound when no row exists.
	FindByID(ctx context.Context, id uint) (*Product, error)
	// GetOrCreate persists the product unless a row with its id already
	// exists, in which case the existing row is returned untouched.
	GetOrCreate(ctx context.Context, product *Product) (*Product, error)
}

// ProductResolver resolves a catalog product id to a fully populated local
// Product row, consulting cache, local store and the remote catalog in order.
type ProductResolver interface {
	Resolve(ctx context.Context, productID uint) (*Product, error)
}
