package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/janinaluoto-sys/VibeTestingInventoryApp/internal/app"
	"github.com/janinaluoto-sys/VibeTestingInventoryApp/internal/observability"
	"github.com/janinaluoto-sys/VibeTestingInventoryApp/internal/platform/cache"
	"github.com/janinaluoto-sys/VibeTestingInventoryApp/internal/platform/db"
	"github.com/janinaluoto-sys/VibeTestingInventoryApp/internal/products"
	"github.com/janinaluoto-sys/VibeTestingInventoryApp/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *app.Config, logger *slog.Logger) error {
	pool, err := db.New(ctx, cfg.PGDSN, db.Options{MaxConns: cfg.PGMaxConns})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := products.EnsureSchema(ctx, pool); err != nil {
		return err
	}

	repo := products.NewRepository(pool)
	if cfg.SeedOnStart {
		if _, err := products.NewSeeder(repo, logger, nil).Run(ctx); err != nil {
			return err
		}
	}

	var redisClient *redis.Client
	var productCache *products.Cache
	if cfg.CacheEnabled() {
		redisClient, err = cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, serving without listing cache", slog.Any("error", err))
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					logger.Warn("redis close", slog.Any("error", err))
				}
			}()
			productCache = products.NewCache(redisClient, cfg.CacheTTL)
		}
	}

	productService := products.NewService(repo, productCache, logger)
	productHandler := products.NewHandler(logger, productService)

	var jobHandler *jobs.Handler
	if redisClient != nil {
		redisOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr}
		inspector := asynq.NewInspector(redisOpts)
		defer func() {
			if err := inspector.Close(); err != nil {
				logger.Warn("inspector close", slog.Any("error", err))
			}
		}()
		jobHandler = jobs.NewHandler(inspector, logger)
		enqueueStartupWarmup(ctx, redisOpts, logger)
	}

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		ProductHandler: productHandler,
		JobHandler:     jobHandler,
		Metrics:        observability.NewMetrics(),
		DB:             pool,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("api", "/api/products"))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// enqueueStartupWarmup asks the worker to fill the listing cache. Failure only
// means the first reader populates it instead.
func enqueueStartupWarmup(ctx context.Context, redisOpts asynq.RedisClientOpt, logger *slog.Logger) {
	client := jobs.NewClient(redisOpts)
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("jobs client close", slog.Any("error", err))
		}
	}()
	enqueueCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if _, err := client.EnqueueCatalogWarmup(enqueueCtx, "startup"); err != nil && !errors.Is(err, asynq.ErrDuplicateTask) {
		logger.Warn("enqueue catalog warmup", slog.Any("error", err))
	}
}
