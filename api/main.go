package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/catalog-aggregator/internal/catalog"
	"github.com/rogerio-castellano/catalog-aggregator/internal/config"
	"github.com/rogerio-castellano/catalog-aggregator/internal/db"
	api "github.com/rogerio-castellano/catalog-aggregator/internal/http"
	"github.com/rogerio-castellano/catalog-aggregator/internal/http/handlers"
	rl "github.com/rogerio-castellano/catalog-aggregator/internal/http/rate_limiter"
	"github.com/rogerio-castellano/catalog-aggregator/internal/logger"
	"github.com/rogerio-castellano/catalog-aggregator/internal/provider"
	"github.com/rogerio-castellano/catalog-aggregator/internal/redissvc"
	"github.com/rogerio-castellano/catalog-aggregator/internal/repo"
)

// @title Catalog Aggregator API
// @version 1.0
// @description Merged product listings and lookups over several e-commerce providers.
// @host localhost:8080
// @BasePath /
func main() {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting catalog aggregator",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := loadProviders(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to load providers", zap.Error(err))
	}
	for _, p := range providers {
		log.Info("Provider configured",
			zap.String("provider", p.Name),
			zap.String("base_url", p.BaseURL),
			zap.Duration("timeout", p.Timeout))
	}

	metricsRepo, closeMetrics, err := newMetricsRepository(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to set up provider stats", zap.Error(err))
	}
	defer closeMetrics()

	clients := make([]catalog.ProviderClient, len(providers))
	for i, p := range providers {
		clients[i] = provider.NewClient(p)
	}
	svc := catalog.NewService(catalog.Instrument(clients, metricsRepo, log), cfg.Catalog.Concurrency, log)

	var limiter *rl.Limiter
	if cfg.RateLimit.Enabled {
		limiter = rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TTL)
		go limiter.StartVisitorCleanupLoop(ctx, time.Minute)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      api.NewRouter(handlers.NewServer(svc, metricsRepo, len(providers), log), limiter, log),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	log.Info("Server exited gracefully")
}

// loadProviders reads the provider list once. It is read-only afterwards.
func loadProviders(ctx context.Context, cfg *config.Config) ([]provider.Provider, error) {
	var source repo.ProviderRepository

	switch cfg.ProvidersSource {
	case config.ProviderSourcePostgres:
		database, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		defer database.Close()
		source = repo.NewPostgresProviderRepository(database)
	default:
		source = repo.NewStaticProviderRepository(cfg.Providers)
	}

	providers, err := source.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load providers from %s: %w", cfg.ProvidersSource, err)
	}
	return providers, nil
}

func newMetricsRepository(ctx context.Context, cfg *config.Config) (repo.MetricsRepository, func(), error) {
	if cfg.Stats.Backend != config.StatsBackendRedis {
		return repo.NewInMemoryMetricsRepository(), func() {}, nil
	}

	rdb, err := redissvc.Connect(ctx, redissvc.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	return repo.NewRedisMetricsRepository(rdb), func() { _ = rdb.Close() }, nil
}
