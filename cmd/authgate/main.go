package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"authgate/internal/gateway/api"
	"authgate/internal/platform/config"
	"authgate/internal/platform/server"
	"authgate/internal/platform/telemetry"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry
	shutdown, err := telemetry.Setup(context.Background(), "authgate")
	if err != nil {
		slog.Error("telemetry setup failed", "error", err)
		os.Exit(1)
	}

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		slog.Error("metrics initialization failed", "error", err)
		os.Exit(1)
	}

	handler := api.NewHandler(logger, metrics)

	srv := server.New(cfg.Addr, handler, cfg.ShutdownTimeout)

	slog.Info("authgate starting", "addr", cfg.Addr, "log_level", cfg.LogLevel)

	if err := srv.Run(ctx); err != nil {
		slog.Error("server error", "error", err)
	}

	if err := shutdown(context.Background()); err != nil {
		slog.Error("telemetry shutdown error", "error", err)
	}
}
