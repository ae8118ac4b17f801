// Package resolver implements the cache-aside product lookup: cache first,
// then the local store, then the remote catalog. The cache is advisory and
// never the system of record; every cache failure falls through to the next
// source.
package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tair/favorites-api/internal/favorites/client"
	"github.com/tair/favorites-api/internal/favorites/domain"
	"github.com/tair/favorites-api/pkg/cache"
	"github.com/tair/favorites-api/pkg/logger"
)

const cacheTTL = 24 * time.Hour

// cachedProduct is the cache value shape. Price is kept as the decimal's
// string form so a read-back re-serializes to the exact same text.
type cachedProduct struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	ReviewScore *int   `json:"review_score,omitempty"`
	Link        string `json:"link,omitempty"`
}

// Resolver resolves catalog product ids to local Product rows.
type Resolver struct {
	cache    cache.Store
	products domain.ProductRepository
	catalog  *client.CatalogClient
}

// NewResolver creates a resolver over the given cache, store and catalog.
func NewResolver(store cache.Store, products domain.ProductRepository, catalog *client.CatalogClient) *Resolver {
	return &Resolver{cache: store, products: products, catalog: catalog}
}

func cacheKey(id uint) string {
	return fmt.Sprintf("product_%d", id)
}

// Resolve returns the Product for id, trying cache, local store and remote
// catalog in order. Each tier short-circuits on success. A remote miss
// (non-200 or timeout) returns ErrProductNotFound with no row created and
// no cache entry written.
func (r *Resolver) Resolve(ctx context.Context, id uint) (*domain.Product, error) {
	if product, ok := r.fromCache(ctx, id); ok {
		return r.products.GetOrCreate(ctx, product)
	}

	product, err := r.products.FindByID(ctx, id)
	if err == nil {
		r.writeCache(ctx, product)
		return product, nil
	}
	if !errors.Is(err, domain.ErrProductNotFound) {
		return nil, err
	}

	product, err = r.catalog.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product, err = r.products.GetOrCreate(ctx, product)
	if err != nil {
		return nil, err
	}

	r.writeCache(ctx, product)
	return product, nil
}

// fromCache loads and validates a cached product. Corrupt entries and cache
// backend errors are logged and treated as misses.
func (r *Resolver) fromCache(ctx context.Context, id uint) (*domain.Product, bool) {
	raw, err := r.cache.Get(ctx, cacheKey(id))
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Warn(ctx).Err(err).Uint("product_id", id).Msg("Product cache unavailable")
		}
		return nil, false
	}

	var cached cachedProduct
	if err := json.Unmarshal(raw, &cached); err != nil {
		logger.Warn(ctx).Err(err).Uint("product_id", id).Msg("Corrupt product cache entry")
		return nil, false
	}

	price, err := decimal.NewFromString(cached.Price)
	if err != nil {
		logger.Warn(ctx).Err(err).Uint("product_id", id).Msg("Corrupt cached price")
		return nil, false
	}

	link := cached.Link
	if link == "" {
		link = r.catalog.ProductURL(cached.ID)
	}

	return &domain.Product{
		ID:          cached.ID,
		Title:       cached.Title,
		Image:       cached.Image,
		Price:       price,
		ReviewScore: cached.ReviewScore,
		Link:        link,
	}, true
}

func (r *Resolver) writeCache(ctx context.Context, product *domain.Product) {
	value, err := json.Marshal(cachedProduct{
		ID:          product.ID,
		Title:       product.Title,
		Image:       product.Image,
		Price:       product.Price.String(),
		ReviewScore: product.ReviewScore,
		Link:        product.Link,
	})
	if err != nil {
		return
	}

	if err := r.cache.Set(ctx, cacheKey(product.ID), value, cacheTTL); err != nil {
		logger.Warn(ctx).Err(err).Uint("product_id", product.ID).Msg("Failed to cache product")
	}
}
