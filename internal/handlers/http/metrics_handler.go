// internal/handlers/http/metrics_handler.go
// Handler untuk metrics Prometheus (text exposition format)

package http

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"safenet-api/internal/util"
)

// Exporter dipenuhi oleh *metrics.Registry.
type Exporter interface {
	Export(ctx context.Context) ([]byte, error)
	ContentType() string
}

type MetricsDeps struct {
	Exporter Exporter
	Timeout  time.Duration // 0 = tanpa batas tambahan
	Logger   *zap.Logger
}

func NewMetricsHandler(deps MetricsDeps) http.HandlerFunc {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if _, ok := ctx.Deadline(); !ok && deps.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, deps.Timeout)
			defer cancel()
		}

		body, err := deps.Exporter.Export(ctx)
		if err != nil {
			log.Error("metrics export failed", zap.Error(err))
			writeError(w, util.Internal("metrics export failed"))
			return
		}

		w.Header().Set("Content-Type", deps.Exporter.ContentType())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}
