// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"safenet-api/internal/app"
	"safenet-api/internal/config"
	"safenet-api/internal/logging"
)

var BuildVersion = "dev" // diisi saat ldflags

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("service", cfg.AppName), zap.String("version", BuildVersion))

	a, err := app.New(cfg, logger) // registry metrics + routes
	if err != nil {
		logger.Fatal("init app", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		logger.Error("server error", zap.Error(err))
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("server stopped")
}
