package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnknownOlympus/mesafe/internal/api"
	"github.com/UnknownOlympus/mesafe/internal/config"
	"github.com/UnknownOlympus/mesafe/internal/distance"
	"github.com/UnknownOlympus/mesafe/internal/geocoding"
	"github.com/UnknownOlympus/mesafe/internal/logger"
	"github.com/UnknownOlympus/mesafe/internal/metrics"
	"github.com/UnknownOlympus/mesafe/internal/places"
	"github.com/UnknownOlympus/mesafe/internal/repository"
	"github.com/UnknownOlympus/mesafe/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// main is the entry point of the distance API server.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	appLogger := logger.Setup(cfg.Env)

	// Create a separate registry for metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	matchMode, err := distance.ParseMatchMode(cfg.Places.MatchMode)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	sourceCfg := places.SourceConfig{
		Type:  places.SourceType(cfg.Places.Source),
		Path:  cfg.Places.Path,
		Sheet: cfg.Places.Sheet,
	}

	// The database is only needed when places are stored in PostgreSQL.
	var (
		pinger api.Pinger
		repo   *repository.Repository
	)
	if sourceCfg.Type == places.SourcePostgres {
		dtb, errDB := repository.NewDatabase(ctx,
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
		)
		if errDB != nil {
			log.Fatalf("Failed to connect to DB: %v", errDB)
		}
		defer dtb.Close()

		repo = repository.NewRepository(dtb, appLogger)
		if errDB = prepareDatabase(ctx, repo); errDB != nil {
			log.Fatalf("Failed to prepare DB: %v", errDB)
		}
		sourceCfg.Lister = repo
		pinger = repo
	}

	source, err := places.NewSource(sourceCfg)
	if err != nil {
		log.Fatalf("Failed to create places source: %v", err)
	}

	table, err := source.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load reference table: %v", err)
	}

	calc := distance.NewCalculator(table, distance.Options{
		Match:    matchMode,
		CacheTTL: cfg.Places.CacheTTL,
		Metrics:  appMetrics,
		Logger:   appLogger,
	})

	if repo != nil {
		enrichment, errSvc := newEnrichmentService(cfg, appLogger, repo, appMetrics, func(ctx context.Context) error {
			_, errRefresh := places.Refresh(ctx, source, calc)
			return errRefresh
		})
		if errSvc != nil {
			log.Fatalf("Failed to create geocoding provider: %v", errSvc)
		}
		go enrichment.Run(ctx)
	}

	if cfg.Env != logger.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(appLogger, calc, pinger, reg)

	appLogger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.",
		"port", cfg.Port, "source", sourceCfg.Type, "places", table.Len())

	if err = serve(ctx, appLogger, router, cfg.Port); err != nil {
		appLogger.ErrorContext(ctx, "API server failed", "error", err)
		return
	}

	appLogger.InfoContext(ctx, "Application stopped gracefully.")
}

// prepareDatabase creates the places table and seeds it with the provinces.
func prepareDatabase(ctx context.Context, repo *repository.Repository) error {
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	return repo.SeedPlaces(ctx, places.Provinces().Places())
}

// newEnrichmentService creates the geocoding provider and the worker that fills in
// missing coordinates.
func newEnrichmentService(
	cfg *config.Config,
	log *slog.Logger,
	repo *repository.Repository,
	appMetrics *metrics.Metrics,
	refresh service.RefreshFunc,
) (*service.EnrichmentService, error) {
	// Google allows 50 requests per second, shared between the workers.
	const googleRateLimit = 50

	providerConfig := geocoding.ProviderConfig{
		Type:   geocoding.ProviderType(cfg.Geocoding.ProviderType),
		APIKey: cfg.Geocoding.APIKey,
		Logger: log,
	}
	if providerConfig.Type == geocoding.ProviderTypeGoogle && cfg.Geocoding.Workers > 0 {
		providerConfig.RateLimit = max(googleRateLimit/cfg.Geocoding.Workers, 1)
	}

	provider, err := geocoding.NewProvider(providerConfig)
	if err != nil {
		return nil, err
	}
	log.Info("Geocoding provider initialized", "type", cfg.Geocoding.ProviderType)

	return service.NewEnrichmentService(
		log,
		repo,
		provider,
		cfg.Geocoding.ProviderType,
		appMetrics,
		cfg.Geocoding.Workers,
		cfg.Geocoding.Interval,
		cfg.Geocoding.AddressSuffix,
		refresh,
	), nil
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, log *slog.Logger, handler http.Handler, port int) error {
	const (
		readTimeout     = 5 * time.Second
		writeTimeout    = 10 * time.Second
		shutdownTimeout = 10 * time.Second
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "Starting API server", "port", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down API server: %w", err)
	}

	return nil
}
