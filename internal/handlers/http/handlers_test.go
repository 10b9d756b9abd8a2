package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safenet-api/internal/util"
)

type countingStub struct{ n int }

func (c *countingStub) IncRequests() { c.n++ }

type exporterStub struct {
	body []byte
	err  error
	wait bool
}

func (e exporterStub) Export(ctx context.Context) ([]byte, error) {
	if e.wait {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return e.body, e.err
}

func (exporterStub) ContentType() string { return "text/plain; version=0.0.4; charset=utf-8" }

func TestHealthHandler(t *testing.T) {
	counter := &countingStub{}
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	h := NewHealthHandler(HealthDeps{Counter: counter, Clock: util.ClockFunc(func() time.Time { return fixed })})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var got HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, HealthResponse{Status: "ok", Service: "safenet", Time: "2024-05-01T10:00:00.000Z"}, got)
	assert.Equal(t, 1, counter.n)
}

func TestPingHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	PingHandler(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"pong":true}`, rec.Body.String())
}

func TestMetricsHandlerWritesExport(t *testing.T) {
	h := NewMetricsHandler(MetricsDeps{Exporter: exporterStub{body: []byte("safenet_requests_total 0\n")}})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; version=0.0.4; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "safenet_requests_total 0\n", rec.Body.String())
}

func TestMetricsHandlerExportError(t *testing.T) {
	h := NewMetricsHandler(MetricsDeps{Exporter: exporterStub{err: errors.New("gather failed")}})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal","message":"metrics export failed"}`, rec.Body.String())
}

func TestMetricsHandlerTimeout(t *testing.T) {
	h := NewMetricsHandler(MetricsDeps{Exporter: exporterStub{wait: true}, Timeout: 10 * time.Millisecond})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
