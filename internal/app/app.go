// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"safenet-api/internal/config"
	"safenet-api/internal/metrics"
	"safenet-api/internal/middleware"
	"safenet-api/internal/util"
)

// App menampung router utama dan registry metrics milik proses.
// Handler = Router yang sudah dibungkus middleware; middleware dipasang di
// luar mux supaya 404/405 juga dapat request id dan access log.
type App struct {
	Router  *mux.Router
	Handler http.Handler
	Metrics *metrics.Registry

	cfg *config.Config
	log *zap.Logger
}

// New membuat instance App: registry metrics (collector runtime hanya jalan
// di luar test mode), middleware, dan semua routes.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	reg, err := metrics.NewRegistry(metrics.Options{
		CollectDefaults: !cfg.TestMode(),
		SampleInterval:  cfg.Metrics.SampleInterval,
		Logger:          log,
	})
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}
	if err := reg.Start(); err != nil {
		reg.Stop()
		return nil, fmt.Errorf("start metrics: %w", err)
	}

	r := mux.NewRouter()
	RegisterRoutesWithDeps(r, RegisterDeps{
		Counter:       reg,
		Exporter:      reg,
		Clock:         util.RealClock{},
		ExportTimeout: cfg.Metrics.ExportTimeout,
		Logger:        log,
	})

	h := middleware.RequestID(middleware.AccessLog(log)(chimw.Recoverer(r)))

	return &App{Router: r, Handler: h, Metrics: reg, cfg: cfg, log: log}, nil
}

// Run listen di cfg.Addr() sampai ctx selesai, lalu graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.cfg.Addr(), err)
	}
	return a.Serve(ctx, ln)
}

// Serve melayani HTTP di ln. Registry dihentikan saat Serve return.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	defer a.Close()

	srv := &http.Server{
		Handler:      a.Handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	port := a.cfg.Port
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = strconv.Itoa(tcp.Port)
	}

	a.log.Info("SafeNet API listening on "+port, zap.String("addr", ln.Addr().String()))
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")
	timeout := a.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Close menghentikan collector runtime. Aman dipanggil berulang.
func (a *App) Close() {
	a.Metrics.Stop()
}
