package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	portsrepo "github.com/SscSPs/trade_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/trade_ledger/internal/core/services"
	"github.com/SscSPs/trade_ledger/internal/handlers"
	"github.com/SscSPs/trade_ledger/internal/middleware"
	"github.com/SscSPs/trade_ledger/internal/platform/config"
	"github.com/SscSPs/trade_ledger/internal/repositories/database/memory"
	"github.com/SscSPs/trade_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/trade_ledger/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// @title Trade Ledger API
// @version 1.0
// @description Documents, partners, payments and cash sessions of a trading business, stored as an event log.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run wires the application and blocks until the server stops. Deferred
// cleanups run on every return path.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx := context.Background()

	var repos portsrepo.RepositoryProvider
	if cfg.EventStore == config.EventStorePostgres {
		var dbPool *pgxpool.Pool
		dbPool, err = database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database pool: %w", err)
		}
		defer database.ClosePgxPool(dbPool, logger)

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		repos = pgsql.NewRepositoryProvider(dbPool)
	} else {
		logger.Warn("Using the in-memory event store; events are lost on restart")
		repos = memory.NewRepositoryProvider()
	}

	serviceContainer := services.NewServiceContainer(cfg, repos)
	if err := serviceContainer.Ledger.Warmup(ctx); err != nil {
		return fmt.Errorf("failed to replay ledgers: %w", err)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("event_store", cfg.EventStore))
	if err := r.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("server failed to run: %w", err)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
