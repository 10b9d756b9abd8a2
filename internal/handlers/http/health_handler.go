// internal/handlers/http/health_handler.go
// Handler health check; setiap request menambah safenet_requests_total

package http

import (
	"net/http"

	"safenet-api/internal/util"
)

// RequestCounter dipenuhi oleh *metrics.Registry.
type RequestCounter interface {
	IncRequests()
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Time    string `json:"time"`
}

// ServiceName selalu dilaporkan /health, tidak ikut APP_NAME.
const ServiceName = "safenet"

type HealthDeps struct {
	Counter RequestCounter
	Clock   util.Clock // nil = RealClock
}

func NewHealthHandler(deps HealthDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Counter != nil {
			deps.Counter.IncRequests()
		}
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Service: ServiceName,
			Time:    util.Timestamp(deps.Clock),
		})
	}
}
