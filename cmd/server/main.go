package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"cropai/internal/adapters/httpapi"
	"cropai/internal/application"
	"cropai/internal/config"
	"cropai/internal/infrastructure/database"
	"cropai/internal/infrastructure/i18n"
	"cropai/internal/infrastructure/session"
	"cropai/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, zlog)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	if cfg.MigrationsPath != "" {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, zlog); err != nil {
			zlog.Fatal("migrations failed", zap.Error(err))
		}
	}

	userRepo := database.NewUserRepository(pool)
	fieldRepo := database.NewFieldRepository(pool)
	predictionRepo := database.NewPredictionRepository(pool)

	resolver := i18n.New(ctx, catalogSource(cfg), i18n.Options{
		FallbackCode: cfg.DefaultLanguage,
		Logger:       zlog,
	})
	if resolver.Degraded() {
		zlog.Warn("serving with built-in catalog only")
	}

	server := httpapi.NewServer(cfg, zlog, httpapi.Deps{
		Accounts:    application.NewAccountService(userRepo),
		Fields:      application.NewFieldService(fieldRepo),
		Predictions: application.NewPredictionService(predictionRepo, zlog),
		Locales:     application.NewLocaleService(resolver),
		Sessions:    session.NewStore(cfg.SessionTTL),
		Users:       userRepo,
	})

	if err := server.Run(ctx); err != nil {
		zlog.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

// catalogSource picks where translations come from: a remote catalog, a
// local file, or the embedded copy.
func catalogSource(cfg *config.Config) i18n.Source {
	switch {
	case cfg.CatalogURL != "":
		return i18n.HTTPSource{URL: cfg.CatalogURL}
	case cfg.CatalogPath != "":
		return i18n.FileSource{Path: cfg.CatalogPath}
	default:
		return i18n.EmbeddedSource()
	}
}
