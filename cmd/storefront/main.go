package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/homesteadmill/storefront/config"
	"github.com/homesteadmill/storefront/internal/catalog"
	"github.com/homesteadmill/storefront/internal/catalog/domain"
	"github.com/homesteadmill/storefront/internal/catalog/repository"
	"github.com/homesteadmill/storefront/internal/shopify"
	"github.com/homesteadmill/storefront/kafka"
	"github.com/homesteadmill/storefront/pkg/logger"
	"github.com/homesteadmill/storefront/pkg/tracing"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("gateway_domain", cfg.Shopify.Domain).
		Msg("Starting storefront service")

	// Initialize tracing
	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled")
	}

	// Cache store: Redis when configured, file store otherwise
	var (
		snapshots domain.SnapshotStore
		cartRefs  domain.CartRefStore
	)
	if cfg.RedisAddr != "" {
		store := repository.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		snapshots, cartRefs = store, store
		logger.Logger.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis cache store")
	} else {
		store, err := repository.NewFileStore(cfg.SnapshotDir)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize cache store")
		}
		snapshots, cartRefs = store, store
		logger.Logger.Info().Str("dir", cfg.SnapshotDir).Msg("Using file cache store")
	}
	snapshots = repository.NewTracedSnapshotStore(snapshots)

	// Kafka publisher is optional
	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Event publishing disabled")
			publisher = nil
		}
	}

	// Commerce gateway client
	gateway := shopify.NewClient(shopify.Config{
		Domain:      cfg.Shopify.Domain,
		AccessToken: cfg.Shopify.AccessToken,
		APIVersion:  cfg.Shopify.APIVersion,
		Timeout:     cfg.Shopify.Timeout,
	})

	// Initialize session and handler with Wire DI
	app, err := catalog.InitializeApp(gateway, snapshots, cartRefs, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize app")
	}

	// Prime from cache, then refresh from the gateway in the background
	app.Session.Start(context.Background())

	go startHTTPServer(app, cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	app.Session.Close()
	if err := publisher.Close(); err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to close publisher")
	}
	if tp != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to shut down tracer")
		}
	}
}

func startHTTPServer(app *catalog.App, port string) {
	router := mux.NewRouter()

	app.Handler.RegisterRoutes(router)
	app.Handler.RegisterHealthCheck(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}
