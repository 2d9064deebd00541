package main

import (
	"context"
	"log"
	"os"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/buildinfo"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/server"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
