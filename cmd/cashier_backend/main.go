package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/cashier_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashier_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashier_app/internal/core/services"
	"github.com/SscSPs/cashier_app/internal/handlers"
	"github.com/SscSPs/cashier_app/internal/middleware"
	"github.com/SscSPs/cashier_app/internal/platform/config"
	"github.com/SscSPs/cashier_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/cashier_app/internal/repositories/memory"
	"github.com/SscSPs/cashier_app/internal/utils/cashier"
	"github.com/SscSPs/cashier_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// @title Cashier API
// @version 1.0
// @description Computes change for cash purchases and breaks it into bills and coins.

// @host localhost:8080
// @BasePath /
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := cashier.ValidateCanonical(domain.Denominations); err != nil {
		logger.Error("Invalid denomination table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, dbPool, err := buildRepositories(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	apiLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(repos), apiLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositories picks Postgres when PGSQL_URL is set and the in-memory history otherwise.
// The returned pool is nil in the in-memory case.
func buildRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, *pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		repo, err := memory.NewCalculationRepository(cfg.HistoryCacheSize)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Using in-memory calculation history", slog.Int("size", cfg.HistoryCacheSize))
		return portsrepo.RepositoryProvider{CalculationRepo: repo}, nil, nil
	}

	logger.Info("Running database migrations...", slog.String("source", cfg.MigrationsPath))
	applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")
	return pgsql.NewRepositoryProvider(dbPool), dbPool, nil
}
