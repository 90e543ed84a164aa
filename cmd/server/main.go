package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/soccer-data-service/internal/config"
	"github.com/preston-bernstein/soccer-data-service/internal/logging"
	"github.com/preston-bernstein/soccer-data-service/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "soccer-data-service"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, stop); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, stop context.CancelFunc) error {
	cfg := config.Load()
	logger := newLogger()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "startup failed", err, slog.String(logging.FieldDataPath, cfg.DataPath))
		return err
	}
	srv.Run(ctx, stop)
	return nil
}

func newLogger() *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})
}
