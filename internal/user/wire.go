//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	favdomain "github.com/tair/favorites-api/internal/favorites/domain"
	favrepository "github.com/tair/favorites-api/internal/favorites/repository"
	"github.com/tair/favorites-api/internal/user/delivery/http"
	"github.com/tair/favorites-api/internal/user/domain"
	"github.com/tair/favorites-api/internal/user/repository"
	"github.com/tair/favorites-api/internal/user/usecase/command"
	"github.com/tair/favorites-api/internal/user/usecase/query"
	"github.com/tair/favorites-api/pkg/cache"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// ProvideFavoriteRepository provides the favorites ledger used during
// registration
func ProvideFavoriteRepository(db *gorm.DB) favdomain.FavoriteRepository {
	return favrepository.NewGormFavoriteRepository(db)
}

// Command Handlers Providers
func ProvideRegisterUserHandler(repo domain.UserRepository, favorites favdomain.FavoriteRepository) *command.RegisterUserHandler {
	return command.NewRegisterUserHandler(repo, favorites)
}

func ProvideLoginUserHandler(repo domain.UserRepository) *command.LoginUserHandler {
	return command.NewLoginUserHandler(repo)
}

func ProvideLogoutUserHandler(denylist cache.Store) *command.LogoutUserHandler {
	return command.NewLogoutUserHandler(denylist)
}

func ProvideUpdateUserHandler(repo domain.UserRepository) *command.UpdateUserHandler {
	return command.NewUpdateUserHandler(repo)
}

func ProvideDeleteUserHandler(repo domain.UserRepository) *command.DeleteUserHandler {
	return command.NewDeleteUserHandler(repo)
}

// Query Handlers Providers
func ProvideGetUserHandler(repo domain.UserRepository) *query.GetUserHandler {
	return query.NewGetUserHandler(repo)
}

func ProvideListUsersHandler(repo domain.UserRepository) *query.ListUsersHandler {
	return query.NewListUsersHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
	ProvideFavoriteRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideRegisterUserHandler,
	ProvideLoginUserHandler,
	ProvideLogoutUserHandler,
	ProvideUpdateUserHandler,
	ProvideDeleteUserHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetUserHandler,
	ProvideListUsersHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, denylist cache.Store) (*http.UserHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewUserHandler,
	)
	return nil, nil
}
