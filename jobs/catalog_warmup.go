package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/janinaluoto-sys/VibeTestingInventoryApp/internal/jobs"
	"github.com/janinaluoto-sys/VibeTestingInventoryApp/internal/products"
)

const warmupTimeout = 20 * time.Second

// CatalogLister is satisfied by *products.Service.
type CatalogLister interface {
	List(ctx context.Context) ([]products.Product, error)
}

// CatalogWarmupJob loads the full product listing so the cache is hot for the next reader.
type CatalogWarmupJob struct {
	Catalog CatalogLister
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
}

// NewCatalogWarmupJob wires dependencies for the warmup handler.
func NewCatalogWarmupJob(catalog CatalogLister, logger *slog.Logger, metrics *jobmetrics.Metrics) *CatalogWarmupJob {
	return &CatalogWarmupJob{Catalog: catalog, Logger: logger, Metrics: metrics}
}

// Handle processes TaskCatalogWarmup tasks.
func (j *CatalogWarmupJob) Handle(ctx context.Context, t *asynq.Task) (err error) {
	if j == nil || j.Catalog == nil {
		return errors.New("catalog warmup: handler not configured")
	}
	var payload CatalogWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("catalog warmup: decode payload: %w", asynq.SkipRetry)
	}

	tracker := j.Metrics.Track(TaskCatalogWarmup)
	defer func() {
		err = tracker.End(err)
	}()

	logger := j.logger().With(slog.String("reason", payload.Reason))
	start := time.Now()

	warmCtx, cancel := context.WithTimeout(ctx, warmupTimeout)
	defer cancel()
	rows, err := j.Catalog.List(warmCtx)
	if err != nil {
		logger.Error("catalog warmup", slog.Any("error", err))
		return err
	}
	j.Metrics.SetWarmedProducts(len(rows))
	logger.Info("completed catalog warmup", slog.Int("products", len(rows)), slog.Duration("duration", time.Since(start)))
	return nil
}

func (j *CatalogWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
