// Package main is the entry point for the ride search service.
//
//	@title						Ride Search API
//	@version					1.0.0
//	@description				A carpooling ride search service that matches passengers with published rides by origin, destination and date.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/ridepool/ride-search-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/ridepool/ride-search-service/docs"

	ridehttp "github.com/ridepool/ride-search-service/internal/adapter/http"
	"github.com/ridepool/ride-search-service/internal/adapter/http/middleware"
	"github.com/ridepool/ride-search-service/internal/config"
	"github.com/ridepool/ride-search-service/internal/domain"
	"github.com/ridepool/ride-search-service/internal/infrastructure/logger"
	"github.com/ridepool/ride-search-service/internal/infrastructure/retry"
	"github.com/ridepool/ride-search-service/internal/infrastructure/timeutil"
	"github.com/ridepool/ride-search-service/internal/store/memory"
	"github.com/ridepool/ride-search-service/internal/store/postgres"
	"github.com/ridepool/ride-search-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize global logger from config
	logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	log := logger.Global

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Backend).
		Msg("Configuration loaded")

	// Build the ride store backend
	store, cleanup, err := buildStore(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize ride store")
	}
	defer cleanup()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = ridehttp.NewRequestValidator()

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware (request ID, request logging, panic recovery)
	middleware.Setup(e, log.Logger)

	// Wire the search use case and handler
	presenter := usecase.NewRidePresenter(
		usecase.NewJPEGThumbnailer(cfg.Search.ThumbnailWidth, cfg.Search.ThumbnailQuality),
	)
	searchUseCase := usecase.NewRideSearchUseCase(store, timeutil.NewRealClock(), presenter, &usecase.Config{
		PageSize:    cfg.Search.PageSize,
		FutureLimit: cfg.Search.FutureLimit,
	})
	handler := ridehttp.NewRideHandler(searchUseCase)

	ridehttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// buildStore constructs the configured ride store backend.
// The returned cleanup function releases backend resources on shutdown.
func buildStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (domain.RideStore, func(), error) {
	switch cfg.Store.Backend {
	case "postgres":
		// The database may come up after the service in orchestrated
		// environments, so retry the initial connection.
		pool, err := retry.DoWithResult(ctx, func() (*pgxpool.Pool, error) {
			return postgres.NewPool(ctx, cfg.Store.DSN)
		}, retry.DatabaseConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		log.WithStore("postgres").Info().Msg("Connected to database")
		return postgres.New(pool), pool.Close, nil

	case "memory":
		store := memory.New()
		if cfg.Store.SeedFile != "" {
			if err := store.LoadSeedFile(cfg.Store.SeedFile); err != nil {
				return nil, nil, fmt.Errorf("load seed file: %w", err)
			}
			log.WithStore("memory").Info().Str("seed_file", cfg.Store.SeedFile).Msg("Seed data loaded")
		}
		return store, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
