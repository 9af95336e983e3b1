package main

import (
	"context"
	"net/http"
	"os"

	"github.com/encuotas/storefront-backend/api/controllers"
	"github.com/encuotas/storefront-backend/api/routes"
	"github.com/encuotas/storefront-backend/internal/cart"
	"github.com/encuotas/storefront-backend/internal/catalog"
	"github.com/encuotas/storefront-backend/internal/leads"
	"github.com/encuotas/storefront-backend/pkg/config"
	"github.com/encuotas/storefront-backend/pkg/db"
	"github.com/encuotas/storefront-backend/pkg/logger"
	"github.com/encuotas/storefront-backend/pkg/metrics"
	"github.com/encuotas/storefront-backend/pkg/migrate"
	"github.com/encuotas/storefront-backend/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	storefrontMetrics := metrics.NewStorefrontMetrics(registry)

	catalogService := catalog.NewService(catalog.NewRepository(dbClient.DB()))

	cartStore := cart.NewSnapshotStore(redisClient, cfg.Cart.SnapshotTTL, logg)
	cartService := cart.NewService(cartStore, catalogService, storefrontMetrics)

	leadService := leads.NewService(
		leads.NewRepository(dbClient.DB()),
		leadSink(cfg),
		cfg.WhatsApp.Host,
		cfg.WhatsApp.DestinationNumber(),
		storefrontMetrics,
		logg,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting storefront server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			map[string]controllers.Pinger{
				"database": dbClient,
				"redis":    redisClient,
			},
			catalogService,
			cartService,
			leadService,
			registry,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "storefront server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// leadSink returns nil when no sink URL is configured; the workflow then
// skips forwarding.
func leadSink(cfg *config.Config) leads.Sink {
	sink := leads.NewHTTPSink(cfg.LeadSink)
	if sink == nil {
		return nil
	}
	return sink
}
