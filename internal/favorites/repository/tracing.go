package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/favorites-api/internal/favorites/domain"
)

var tracer = otel.Tracer("favorites-repository")

// GormFavoriteRepositoryWithTracing wraps GormFavoriteRepository with
// OpenTelemetry spans around every ledger operation.
type GormFavoriteRepositoryWithTracing struct {
	*GormFavoriteRepository
}

// NewGormFavoriteRepositoryWithTracing creates a new repository with tracing
func NewGormFavoriteRepositoryWithTracing(db *gorm.DB) *GormFavoriteRepositoryWithTracing {
	return &GormFavoriteRepositoryWithTracing{
		GormFavoriteRepository: NewGormFavoriteRepository(db),
	}
}

func (r *GormFavoriteRepositoryWithTracing) EnsureForOwner(ctx context.Context, owner domain.Owner) (*domain.Favorite, error) {
	ctx, span := tracer.Start(ctx, "repository.EnsureForOwner",
		trace.WithAttributes(
			attribute.String("owner.type", owner.Type),
			attribute.Int("owner.id", int(owner.ID)),
		),
	)
	defer span.End()

	favorite, err := r.GormFavoriteRepository.EnsureForOwner(ctx, owner)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("favorite.id", int(favorite.ID)))
	return favorite, nil
}

func (r *GormFavoriteRepositoryWithTracing) AddProduct(ctx context.Context, favoriteID, productID uint) (*domain.FavoriteProduct, error) {
	ctx, span := tracer.Start(ctx, "repository.AddProduct",
		trace.WithAttributes(
			attribute.Int("favorite.id", int(favoriteID)),
			attribute.Int("product.id", int(productID)),
		),
	)
	defer span.End()

	entry, err := r.GormFavoriteRepository.AddProduct(ctx, favoriteID, productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("entry.id", int(entry.ID)))
	return entry, nil
}

func (r *GormFavoriteRepositoryWithTracing) RemoveProduct(ctx context.Context, favoriteID, productID uint) error {
	ctx, span := tracer.Start(ctx, "repository.RemoveProduct",
		trace.WithAttributes(
			attribute.Int("favorite.id", int(favoriteID)),
			attribute.Int("product.id", int(productID)),
		),
	)
	defer span.End()

	if err := r.GormFavoriteRepository.RemoveProduct(ctx, favoriteID, productID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *GormFavoriteRepositoryWithTracing) ListProducts(ctx context.Context, favoriteID uint) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.ListProducts",
		trace.WithAttributes(attribute.Int("favorite.id", int(favoriteID))),
	)
	defer span.End()

	products, err := r.GormFavoriteRepository.ListProducts(ctx, favoriteID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}
