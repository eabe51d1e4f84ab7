package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/adapters/erpapi"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/adapters/export"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/adapters/locking"
	portsrepo "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/repositories"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/handlers"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/middleware"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/platform/config"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/platform/credentials"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/repositories/database/pgsql"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/repositories/memory"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils"
	"github.com/Syed-Hadii/ERP-Software-sub003/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const migrationsPath = "file://migrations"

// @title Voucher Desk API
// @version 1.0
// @description Voucher entry, validation and submission for the Farm ERP.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	creds, err := newCredentialProvider(cfg)
	if err != nil {
		logger.Error("Failed to initialize credential store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	backend := erpapi.NewClient(cfg.ERPBaseURL, cfg.ERPTimeout,
		erpapi.WithTokenSource(erpapi.NewCredentialTokenSource(creds)))

	var repos portsrepo.RepositoryProvider
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer dbPool.Close()

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, migrationsPath); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		repos = pgsql.NewRepositoryProvider(dbPool, backend)
	} else {
		logger.Warn("PGSQL_URL not set, drafts are kept in memory")
		repos = memory.NewRepositoryProvider(backend)
	}

	infra := services.Infrastructure{
		Exporter:    export.NewXLSXExporter(),
		Credentials: creds,
	}

	if cfg.RedisAddress != "" {
		guard, rdb, err := locking.Connect(ctx, cfg.RedisAddress, locking.DefaultLockTTL)
		if err != nil {
			logger.Error("Failed to connect redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer rdb.Close()
		infra.Guard = guard
		logger.Info("Submission locks held in redis", slog.String("address", cfg.RedisAddress))
	}

	posthogClient := utils.InitializePosthogClient(cfg.PostHogAPIKey, logger)
	defer posthogClient.Close()
	infra.Observer = posthogClient

	serviceContainer := services.NewServiceContainer(cfg, repos, infra)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics, cors)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(),
		middleware.PosthogMiddleware(posthogClient),
		cors.New(corsConfig(cfg)),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("erp_base_url", cfg.ERPBaseURL))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newCredentialProvider(cfg *config.Config) (portssvc.CredentialProvider, error) {
	if cfg.CredentialsFile == "" || cfg.CredentialsKey == "" {
		return credentials.NewMemory(), nil
	}
	return credentials.NewFile(cfg.CredentialsFile, cfg.CredentialsKey)
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Content-Disposition"}
	c.MaxAge = 12 * time.Hour
	if len(cfg.CORSAllowedOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
		c.AllowCredentials = true
	}
	return c
}
