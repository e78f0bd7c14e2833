package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/daleelbalady/storefront-gateway/api/middleware"
	"github.com/daleelbalady/storefront-gateway/api/routes"
	"github.com/daleelbalady/storefront-gateway/internal/checkout"
	"github.com/daleelbalady/storefront-gateway/internal/platform"
	"github.com/daleelbalady/storefront-gateway/internal/session"
	"github.com/daleelbalady/storefront-gateway/pkg/config"
	"github.com/daleelbalady/storefront-gateway/pkg/logger"
	"github.com/daleelbalady/storefront-gateway/pkg/metrics"
	pkgredis "github.com/daleelbalady/storefront-gateway/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront-gateway"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront-gateway",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	platformClient, err := platform.NewClient(cfg.Platform.BaseURL, platform.WithTimeout(cfg.Platform.Timeout))
	if err != nil {
		logg.Error(context.Background(), "failed to build platform client", err)
		os.Exit(1)
	}
	menuCache := platform.NewMenuCache(platformClient, cfg.Menu.CacheTTL)

	var closers []func() error

	var sessionStore session.Store
	var idempotencyStore middleware.IdempotencyStore
	if cfg.Redis.Configured() {
		redisClient, err := pkgredis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		closers = append(closers, redisClient.Close)

		redisStore, err := session.NewRedisStore(redisClient, cfg.Session.TTL)
		if err != nil {
			logg.Error(context.Background(), "failed to build session store", err)
			os.Exit(1)
		}
		sessionStore = redisStore
		idempotencyStore = redisClient
	} else {
		logg.Warn(context.Background(), "redis not configured, sessions are in-memory and submissions are not replay-protected")
		sessionStore = session.NewMemoryStore(cfg.Session.TTL)
	}

	checkoutMetrics := metrics.NewCheckoutMetrics(prometheus.DefaultRegisterer)

	checkoutService, err := checkout.NewService(platformClient, checkoutMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting storefront gateway")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:          cfg,
			Logger:          logg,
			Sessions:        sessionStore,
			Platform:        platformClient,
			Menu:            menuCache,
			Checkout:        checkoutService,
			CheckoutMetrics: checkoutMetrics,
			Idempotency:     idempotencyStore,
		}),
	}

	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "gateway stopped unexpectedly", err)
	}

	var closeErr error
	for _, closeFn := range closers {
		closeErr = multierr.Append(closeErr, closeFn())
	}
	if closeErr != nil {
		logg.Error(ctx, "error closing resources", closeErr)
	}
	if err != nil && err != http.ErrServerClosed {
		os.Exit(1)
	}
}
