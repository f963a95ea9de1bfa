package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/api/middleware"
	"github.com/feral-file/ff-catalog/internal/api/server"
	"github.com/feral-file/ff-catalog/internal/catalog"
	"github.com/feral-file/ff-catalog/internal/config"
	"github.com/feral-file/ff-catalog/internal/ledger"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/metadata"
	"github.com/feral-file/ff-catalog/internal/profile"
	"github.com/feral-file/ff-catalog/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "catalog-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Catalog API")

	// Connect to database
	db, err := store.Open(ctx, cfg.Database.Driver, cfg.Database.DSN(), cfg.Debug, cfg.Database.ConnectTimeout)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.RedactedDSN()))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)
	dataStore := store.NewStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	ledgerClient := ledger.NewClient(adapter.NewHTTPClient(cfg.Ledger.Timeout), jsonAdapter, cfg.Ledger.URL, cfg.Ledger.Timeout)
	fetcher := metadata.NewFetcher(adapter.NewHTTPClient(cfg.Metadata.Timeout), jsonAdapter, metadata.Config{
		IPFSGateway:       cfg.Metadata.IPFSGateway,
		Timeout:           cfg.Metadata.Timeout,
		RequestsPerSecond: cfg.Metadata.RequestsPerSecond,
		Burst:             cfg.Metadata.Burst,
	})
	profiles, err := profile.NewCachedSource(profile.NewStoreSource(dataStore), clock, profile.CacheConfig{
		Size:          cfg.ProfileCache.Size,
		TTL:           cfg.ProfileCache.TTL,
		LookupTimeout: cfg.ProfileCache.LookupTimeout,
	})
	if err != nil {
		logger.Fatal("Failed to create profile cache", zap.Error(err))
	}

	service, closeService := catalog.NewService(ledgerClient, dataStore, profiles, fetcher, clock, catalog.Config{
		EnrichmentWorkers: cfg.Enrichment.Workers,
		ViewDedupWindow:   cfg.Views.DedupWindow,
	})
	defer closeService()

	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, service)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}
	cancel()

	// the original ctx is canceled by now
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("API server stopped")
}
