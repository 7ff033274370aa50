package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jobmetrics "github.com/janinaluoto-sys/VibeTestingInventoryApp/internal/jobs"
	"github.com/janinaluoto-sys/VibeTestingInventoryApp/internal/products"
)

type fakeCatalog struct {
	rows  []products.Product
	err   error
	calls int
}

func (f *fakeCatalog) List(ctx context.Context) ([]products.Product, error) {
	f.calls++
	return f.rows, f.err
}

func TestNewCatalogWarmupTaskDefaultsReason(t *testing.T) {
	task, err := NewCatalogWarmupTask("")
	require.NoError(t, err)
	assert.Equal(t, TaskCatalogWarmup, task.Type())

	var payload CatalogWarmupPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "scheduled", payload.Reason)
}

func TestCatalogWarmupLoadsListing(t *testing.T) {
	catalog := &fakeCatalog{rows: products.SampleCatalog()}
	job := NewCatalogWarmupJob(catalog, nil, jobmetrics.NewMetrics(prometheus.NewRegistry()))

	task, err := NewCatalogWarmupTask("startup")
	require.NoError(t, err)
	require.NoError(t, job.Handle(context.Background(), task))
	assert.Equal(t, 1, catalog.calls)
}

func TestCatalogWarmupPropagatesStoreFailure(t *testing.T) {
	boom := errors.New("connection refused")
	job := NewCatalogWarmupJob(&fakeCatalog{err: boom}, nil, nil)

	task, err := NewCatalogWarmupTask("startup")
	require.NoError(t, err)
	require.ErrorIs(t, job.Handle(context.Background(), task), boom)
}

func TestCatalogWarmupSkipsRetryOnBadPayload(t *testing.T) {
	catalog := &fakeCatalog{}
	job := NewCatalogWarmupJob(catalog, nil, nil)

	err := job.Handle(context.Background(), asynq.NewTask(TaskCatalogWarmup, []byte("{")))
	require.ErrorIs(t, err, asynq.SkipRetry)
	assert.Zero(t, catalog.calls)
}

func TestUnconfiguredWarmupFails(t *testing.T) {
	var job *CatalogWarmupJob
	require.Error(t, job.Handle(context.Background(), asynq.NewTask(TaskCatalogWarmup, nil)))
}

type fakeInspector struct {
	info *asynq.QueueInfo
	err  error
}

func (f fakeInspector) GetQueueInfo(queue string) (*asynq.QueueInfo, error) {
	return f.info, f.err
}

func serveHealth(h *Handler) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Route("/jobs", h.MountRoutes)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/jobs/health", nil))
	return rr
}

func TestJobsHealth(t *testing.T) {
	rr := serveHealth(NewHandler(fakeInspector{info: &asynq.QueueInfo{Queue: "default", Pending: 2, Active: 1}}, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"queue":"default","pending":2,"active":1,"failed":0}`, rr.Body.String())

	rr = serveHealth(NewHandler(fakeInspector{err: errors.New("redis down")}, nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = serveHealth(NewHandler(nil, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"queue":"default","pending":0,"active":0,"failed":0}`, rr.Body.String())
}
