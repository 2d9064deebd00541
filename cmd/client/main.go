package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/buildinfo"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/cli"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/config"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error(ctx, "close failed", "error", err)
		}
	}()

	app.Run(ctx)
}
