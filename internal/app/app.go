package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/config"
	cacherepo "github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/infrastructure/repository/cache"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/interfaces/httpapi"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/cache"
	idgen "github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/id"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/logging"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/resilience"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/usecase"
)

// NewHTTPServer opens the configured store, makes sure the generated dataset
// exists and wires the HTTP API on top. The returned cleanup releases the
// store and must be called after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cat, seed, err := usecase.LoadReferenceData()
	if err != nil {
		return nil, nil, err
	}

	store, cleanup, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var sharedCache *cache.Store
	if cfg.CacheEnabled {
		sharedCache = cache.NewStore(cfg.CacheTTL)
		store = cacherepo.NewStore(store, sharedCache)
	}

	datasetSvc := usecase.NewDatasetService(store, cat, seed, usecase.DatasetOptions{
		Seed:    cfg.GeneratorSeed,
		Season:  cfg.GeneratorSeason,
		Workers: cfg.GeneratorWorkers,
	}, sharedCache, logger)
	if _, err := datasetSvc.EnsureDataset(ctx); err != nil {
		_ = cleanup()
		return nil, nil, fmt.Errorf("ensure dataset: %w", err)
	}

	breakerLogger := logger.Named("store-breaker")
	breaker := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		Enabled:          cfg.StoreCircuitEnabled,
		FailureThreshold: cfg.StoreCircuitFailureCount,
		OpenTimeout:      cfg.StoreCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.StoreCircuitHalfOpenMaxReq,
		OnStateChange: func(from, to resilience.CircuitState) {
			breakerLogger.Warn("store circuit breaker state changed", "from", from, "to", to)
		},
	})
	marketSvc := usecase.NewMarketService(store, cat, sharedCache, breaker, logger)
	watchlistSvc := usecase.NewWatchlistService(store, marketSvc, idgen.NewUUIDGenerator(), logger)

	handler := httpapi.NewHandler(marketSvc, watchlistSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRequests:  cfg.RateLimitRequests,
		RateLimitWindow:    cfg.RateLimitWindow,
		TrustProxyHeaders:  cfg.TrustProxyHeaders,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}
