//go:build wireinject
// +build wireinject

package favorites

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/favorites-api/internal/favorites/client"
	"github.com/tair/favorites-api/internal/favorites/delivery/http"
	"github.com/tair/favorites-api/internal/favorites/domain"
	"github.com/tair/favorites-api/internal/favorites/repository"
	"github.com/tair/favorites-api/internal/favorites/resolver"
	"github.com/tair/favorites-api/internal/favorites/usecase/command"
	"github.com/tair/favorites-api/internal/favorites/usecase/query"
	"github.com/tair/favorites-api/pkg/cache"
)

// ProvideProductRepository provides the local product store
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepository(db)
}

// ProvideFavoriteRepository provides the traced favorites ledger
func ProvideFavoriteRepository(db *gorm.DB) domain.FavoriteRepository {
	return repository.NewGormFavoriteRepositoryWithTracing(db)
}

// ProvideOwnerDirectory provides the owner existence checks
func ProvideOwnerDirectory(db *gorm.DB) domain.OwnerDirectory {
	return repository.NewGormOwnerDirectory(db)
}

// ProvideProductResolver provides the cache-aside product resolver
func ProvideProductResolver(store cache.Store, products domain.ProductRepository, catalog *client.CatalogClient) domain.ProductResolver {
	return resolver.NewResolver(store, products, catalog)
}

// Command Handlers Providers
func ProvideAddFavoriteHandler(
	owners domain.OwnerDirectory,
	productResolver domain.ProductResolver,
	favorites domain.FavoriteRepository,
	events command.EventPublisher,
) *command.AddFavoriteHandler {
	return command.NewAddFavoriteHandler(owners, productResolver, favorites, events)
}

func ProvideRemoveFavoriteHandler(
	owners domain.OwnerDirectory,
	products domain.ProductRepository,
	favorites domain.FavoriteRepository,
	events command.EventPublisher,
) *command.RemoveFavoriteHandler {
	return command.NewRemoveFavoriteHandler(owners, products, favorites, events)
}

// Query Handlers Providers
func ProvideListFavoritesHandler(owners domain.OwnerDirectory, favorites domain.FavoriteRepository) *query.ListFavoritesHandler {
	return query.NewListFavoritesHandler(owners, favorites)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideFavoriteRepository,
	ProvideOwnerDirectory,
	ProvideProductResolver,
)

var HandlerSet = wire.NewSet(
	ProvideAddFavoriteHandler,
	ProvideRemoveFavoriteHandler,
	ProvideListFavoritesHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	store cache.Store,
	catalog *client.CatalogClient,
	events command.EventPublisher,
) (*http.FavoritesHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewFavoritesHandler,
	)
	return nil, nil
}
