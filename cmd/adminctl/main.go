package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aidirectory/adminctl/internal/buildinfo"
	"github.com/aidirectory/adminctl/internal/client/cli"
	"github.com/aidirectory/adminctl/internal/client/config"
	"github.com/aidirectory/adminctl/internal/logging"
)

func main() {
	buildinfo.Print(os.Stdout)

	cfg := config.LoadConfig()

	log := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
