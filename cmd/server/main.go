package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pizza-nz/backoffice-service/internal/config"
	"github.com/pizza-nz/backoffice-service/internal/db"
	"github.com/pizza-nz/backoffice-service/internal/db/repository"
	"github.com/pizza-nz/backoffice-service/internal/logging"
	"github.com/pizza-nz/backoffice-service/internal/router"
	"github.com/pizza-nz/backoffice-service/internal/service"
	"github.com/pizza-nz/backoffice-service/internal/session"
	"github.com/pizza-nz/backoffice-service/internal/websockets"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})

	// Initialize database
	database, err := db.NewMongo(cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			logging.Warn().Err(err).Msg("failed to close database")
		}
	}()

	// Run database migrations
	if err := database.Migrate(cfg.Database); err != nil {
		logging.Fatal().Err(err).Msg("failed to run database migrations")
	}

	repos := repository.NewRepositories(database)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize WebSocket hub
	hub := websockets.NewHub()
	go hub.Run(ctx)

	services := router.Services{
		Menu:         service.NewMenuService(repos.Menu),
		Reservations: service.NewReservationService(repos.Reservation),
		Orders:       service.NewOrderService(repos.Order),
		Staff:        service.NewStaffService(repos.Staff),
		Dashboard:    service.NewDashboardService(repos.Menu, repos.Reservation, repos.Order, repos.Staff),
		Auth: service.NewAuthService(repos.User, session.NewStore(), hub, service.JWTConfig{
			Secret:    cfg.JWT.Secret,
			ExpiresIn: cfg.JWT.ExpiresIn,
		}),
	}

	// Initialize router
	r := router.New(services, hub, database, websockets.NewUpgrader(cfg.Server.AllowedOrigins))

	// Create HTTP server
	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Info().Str("address", cfg.Server.Address).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	logging.Info().Msg("shutting down server")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	logging.Info().Msg("server exited properly")
}
