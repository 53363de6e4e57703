package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/simgeozgundondu/product-management-app/api/routes"
	"github.com/simgeozgundondu/product-management-app/internal/blobstore"
	"github.com/simgeozgundondu/product-management-app/internal/catalog"
	"github.com/simgeozgundondu/product-management-app/pkg/config"
	"github.com/simgeozgundondu/product-management-app/pkg/db"
	"github.com/simgeozgundondu/product-management-app/pkg/logger"
	"github.com/simgeozgundondu/product-management-app/pkg/metrics"
	"github.com/simgeozgundondu/product-management-app/pkg/migrate"
	"github.com/simgeozgundondu/product-management-app/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "catalog-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "catalog-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	blobs, cleanup, err := newBlobStore(context.Background(), cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap blob store", err)
		os.Exit(1)
	}
	defer cleanup()

	engine, err := catalog.NewEngine(catalog.EngineParams{
		Blobs:           blobs,
		Key:             cfg.Store.Key,
		PageSize:        cfg.Catalog.PageSize,
		SearchBlurGrace: cfg.Catalog.SearchBlurGrace,
		Logger:          logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog engine", err)
		os.Exit(1)
	}
	engine.Initialize(context.Background())

	httpMetrics := metrics.NewHTTPMetrics()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"backend": cfg.Store.Backend,
	})
	logg.Info(ctx, "starting catalog api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, blobs, engine, httpMetrics),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "catalog api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stop:
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "error during shutdown", err)
		}
	}
}

// newBlobStore selects the persistence backend from configuration. The
// returned cleanup closes whatever connection was opened.
func newBlobStore(ctx context.Context, cfg *config.Config, logg *logger.Logger) (blobstore.Store, func(), error) {
	switch {
	case cfg.Store.IsRedis():
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		store, err := blobstore.NewRedis(client)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}
		return store, cleanup, nil

	case cfg.Store.IsDB():
		client, err := db.New(ctx, cfg.DB, logg)
		if err != nil {
			return nil, nil, err
		}
		if err := migrate.MaybeRunDev(ctx, cfg, logg, client); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		store, err := blobstore.NewDB(client)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logg.Error(context.Background(), "error closing database", err)
			}
		}
		return store, cleanup, nil

	default:
		return blobstore.NewMemory(), func() {}, nil
	}
}
