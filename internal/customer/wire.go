//go:build wireinject
// +build wireinject

package customer

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/favorites-api/internal/customer/delivery/http"
	"github.com/tair/favorites-api/internal/customer/domain"
	"github.com/tair/favorites-api/internal/customer/repository"
	"github.com/tair/favorites-api/internal/customer/usecase/command"
	"github.com/tair/favorites-api/internal/customer/usecase/query"
	favdomain "github.com/tair/favorites-api/internal/favorites/domain"
	favrepository "github.com/tair/favorites-api/internal/favorites/repository"
)

// ProvideCustomerRepository provides the customer repository
func ProvideCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return repository.NewGormCustomerRepository(db)
}

// ProvideFavoriteRepository provides the favorites ledger used during
// customer creation
func ProvideFavoriteRepository(db *gorm.DB) favdomain.FavoriteRepository {
	return favrepository.NewGormFavoriteRepository(db)
}

func ProvideCreateCustomerHandler(repo domain.CustomerRepository, favorites favdomain.FavoriteRepository) *command.CreateCustomerHandler {
	return command.NewCreateCustomerHandler(repo, favorites)
}

func ProvideUpdateCustomerHandler(repo domain.CustomerRepository) *command.UpdateCustomerHandler {
	return command.NewUpdateCustomerHandler(repo)
}

func ProvideDeleteCustomerHandler(repo domain.CustomerRepository) *command.DeleteCustomerHandler {
	return command.NewDeleteCustomerHandler(repo)
}

func ProvideGetCustomerHandler(repo domain.CustomerRepository) *query.GetCustomerHandler {
	return query.NewGetCustomerHandler(repo)
}

func ProvideListCustomersHandler(repo domain.CustomerRepository) *query.ListCustomersHandler {
	return query.NewListCustomersHandler(repo)
}

// Wire sets
var HandlerSet = wire.NewSet(
	ProvideCustomerRepository,
	ProvideFavoriteRepository,
	ProvideCreateCustomerHandler,
	ProvideUpdateCustomerHandler,
	ProvideDeleteCustomerHandler,
	ProvideGetCustomerHandler,
	ProvideListCustomersHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.CustomerHandler, error) {
	wire.Build(
		HandlerSet,
		http.NewCustomerHandler,
	)
	return nil, nil
}
