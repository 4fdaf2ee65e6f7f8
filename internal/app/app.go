package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/nyrazari/storefront/internal/config"
	handler "github.com/nyrazari/storefront/internal/handler/http"
	redisrepo "github.com/nyrazari/storefront/internal/repository/redis"
	"github.com/nyrazari/storefront/internal/seed"
	"github.com/nyrazari/storefront/internal/service"
	"github.com/nyrazari/storefront/internal/transport/googleform"
	"github.com/nyrazari/storefront/pkg/health"
	"github.com/nyrazari/storefront/pkg/httpclient"
	"github.com/nyrazari/storefront/pkg/tracing"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	rdb            *redis.Client
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "storefront",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// Initialize Redis client.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis",
		slog.String("addr", cfg.RedisAddr),
		slog.Int("db", cfg.RedisDB),
	)

	// Build the dependency graph. The catalog loads its snapshot now, so a
	// fresh deployment starts with the default catalog already persisted.
	catalogService := service.NewCatalogService(ctx, redisrepo.NewCatalogStore(rdb), seed.Products(), logger)
	cartService := service.NewCartService(redisrepo.NewCartStore(rdb, cfg.CartTTLDuration()), logger)

	// Outbound order transport. The form endpoint gives no delivery signal,
	// so retries would only multiply duplicate submissions; one attempt.
	clientCfg := httpclient.DefaultConfig()
	clientCfg.Timeout = cfg.OrderSubmitTimeout
	clientCfg.MaxRetries = 0
	var doer googleform.HTTPDoer = httpclient.New(clientCfg)
	if cfg.OrderBreakerEnabled {
		doer = httpclient.NewCircuitBreakerClient(
			httpclient.New(clientCfg),
			httpclient.DefaultCircuitBreakerConfig("order-form"),
			logger,
		)
	}
	submitter := googleform.NewSubmitter(cfg.OrderFormURL, doer, logger)

	checkoutService := service.NewCheckoutService(cartService, submitter, logger)

	// The admin token is minted per process; a restart invalidates old tokens.
	adminToken := uuid.New().String()

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})

	// HTTP router.
	router := handler.NewRouter(handler.RouterConfig{
		Catalog:       catalogService,
		Carts:         cartService,
		Checkout:      checkoutService,
		Health:        healthHandler,
		Logger:        logger,
		AdminPassword: cfg.AdminPassword,
		AdminToken:    adminToken,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		rdb:            rdb,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	// Graceful HTTP server shutdown with a 10-second deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	// Flush pending spans.
	if err := a.tracerShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
	}

	// Close Redis client.
	if err := a.rdb.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
