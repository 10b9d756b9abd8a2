// internal/app/routes.go
package app

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	hh "safenet-api/internal/handlers/http"
	"safenet-api/internal/util"
)

type RegisterDeps struct {
	Counter       hh.RequestCounter
	Exporter      hh.Exporter
	Clock         util.Clock
	ExportTimeout time.Duration
	Logger        *zap.Logger
}

// RegisterRoutesWithDeps memasang /health, /metrics dan /api/ping.
// HEAD ikut dilayani di semua route GET. Path lain jatuh ke 404 bawaan mux,
// method salah ke 405.
func RegisterRoutesWithDeps(r *mux.Router, deps RegisterDeps) {
	r.HandleFunc("/health", hh.NewHealthHandler(hh.HealthDeps{
		Counter: deps.Counter,
		Clock:   deps.Clock,
	})).Methods(http.MethodGet, http.MethodHead)

	r.HandleFunc("/metrics", hh.NewMetricsHandler(hh.MetricsDeps{
		Exporter: deps.Exporter,
		Timeout:  deps.ExportTimeout,
		Logger:   deps.Logger,
	})).Methods(http.MethodGet, http.MethodHead)

	// --- /api prefix ---
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/ping", hh.PingHandler).Methods(http.MethodGet, http.MethodHead)
}
