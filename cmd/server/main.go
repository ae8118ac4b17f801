package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/tair/favorites-api/internal/config"
	customerhttp "github.com/tair/favorites-api/internal/customer/delivery/http"
	customerrepo "github.com/tair/favorites-api/internal/customer/repository"
	customercommand "github.com/tair/favorites-api/internal/customer/usecase/command"
	customerquery "github.com/tair/favorites-api/internal/customer/usecase/query"
	"github.com/tair/favorites-api/internal/favorites/client"
	favoriteshttp "github.com/tair/favorites-api/internal/favorites/delivery/http"
	favoritesrepo "github.com/tair/favorites-api/internal/favorites/repository"
	"github.com/tair/favorites-api/internal/favorites/resolver"
	favoritescommand "github.com/tair/favorites-api/internal/favorites/usecase/command"
	favoritesquery "github.com/tair/favorites-api/internal/favorites/usecase/query"
	userhttp "github.com/tair/favorites-api/internal/user/delivery/http"
	userrepo "github.com/tair/favorites-api/internal/user/repository"
	usercommand "github.com/tair/favorites-api/internal/user/usecase/command"
	userquery "github.com/tair/favorites-api/internal/user/usecase/query"
	"github.com/tair/favorites-api/kafka"
	"github.com/tair/favorites-api/pkg/cache"
	"github.com/tair/favorites-api/pkg/database"
	"github.com/tair/favorites-api/pkg/logger"
	"github.com/tair/favorites-api/pkg/tracing"
)

const serviceName = "favorites-api"

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info(r.Context()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	logger.Init(serviceName, cfg.Environment == "development")
	logger.SetLevel(cfg.LogLevel)

	ctx := context.Background()

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Tracing disabled")
	} else {
		defer tracing.Shutdown(ctx, tp)
	}

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to connect to database")
		os.Exit(1)
	}

	// Separate plain connection for liveness checks
	healthDB, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to open health check connection")
		os.Exit(1)
	}
	defer healthDB.Close()

	userRepo := userrepo.NewGormUserRepository(db)
	customerRepo := customerrepo.NewGormCustomerRepository(db)
	productRepo := favoritesrepo.NewGormProductRepository(db)
	favoriteRepo := favoritesrepo.NewGormFavoriteRepositoryWithTracing(db)
	ownerDirectory := favoritesrepo.NewGormOwnerDirectory(db)

	for name, migrate := range map[string]func() error{
		"users":     userRepo.AutoMigrate,
		"customers": customerRepo.AutoMigrate,
		"products":  productRepo.AutoMigrate,
		"favorites": favoriteRepo.AutoMigrate,
	} {
		if err := migrate(); err != nil {
			logger.Error(ctx).Err(err).Str("table", name).Msg("Migration failed")
			os.Exit(1)
		}
	}

	var store cache.Store
	if cfg.RedisAddr != "" {
		redisStore, err := cache.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Error(ctx).Err(err).Msg("Failed to connect to Redis")
			os.Exit(1)
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		logger.Warn(ctx).Msg("REDIS_ADDR not set, using in-process cache")
		store = cache.NewMemoryStore()
	}

	var events favoritescommand.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Error(ctx).Err(err).Msg("Failed to connect to Kafka")
			os.Exit(1)
		}
		defer publisher.Close()
		events = publisher
	} else {
		logger.Warn(ctx).Msg("KAFKA_BROKERS not set, event publishing disabled")
	}

	catalog := client.NewCatalogClient(cfg.CatalogBaseURL)
	productResolver := resolver.NewResolver(store, productRepo, catalog)

	userHandler := userhttp.NewUserHandler(
		usercommand.NewRegisterUserHandler(userRepo, favoriteRepo),
		usercommand.NewLoginUserHandler(userRepo),
		usercommand.NewLogoutUserHandler(store),
		usercommand.NewUpdateUserHandler(userRepo),
		usercommand.NewDeleteUserHandler(userRepo),
		userquery.NewGetUserHandler(userRepo),
		userquery.NewListUsersHandler(userRepo),
		userRepo,
	)

	customerHandler := customerhttp.NewCustomerHandler(
		customercommand.NewCreateCustomerHandler(customerRepo, favoriteRepo),
		customercommand.NewUpdateCustomerHandler(customerRepo),
		customercommand.NewDeleteCustomerHandler(customerRepo),
		customerquery.NewGetCustomerHandler(customerRepo),
		customerquery.NewListCustomersHandler(customerRepo),
	)

	favoritesHandler := favoriteshttp.NewFavoritesHandler(
		favoritescommand.NewAddFavoriteHandler(ownerDirectory, productResolver, favoriteRepo, events),
		favoritescommand.NewRemoveFavoriteHandler(ownerDirectory, productRepo, favoriteRepo, events),
		favoritesquery.NewListFavoritesHandler(ownerDirectory, favoriteRepo),
	)

	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestLogger)
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	userHandler.RegisterRoutes(api)
	customerHandler.RegisterRoutes(api)
	favoritesHandler.RegisterRoutes(api)
	userHandler.RegisterHealthCheck(router, healthDB)

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}).Handler(router)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info(ctx).Str("port", cfg.Port).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx).Err(err).Msg("Server failed")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx).Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx).Err(err).Msg("Forced shutdown")
	}
}
