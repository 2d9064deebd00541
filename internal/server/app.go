// Package server wires the stub admin API: seeded in-memory users and
// catalog behind the echo HTTP server, with graceful shutdown on signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/logging"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/server/catalog"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/server/config"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/server/httpapi"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/server/users"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	userService    *users.Service
	catalogService *catalog.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.LogLevel, c.LogFormat)

	us := users.NewService(users.NewMemoryRepository(), c)
	if err := us.Seed(ctx); err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}

	cs := catalog.NewService()
	if err := cs.Seed(ctx); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	return &App{config: c, logger: logger, userService: us, catalogService: cs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.catalogService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a signal arrives, ctx is cancelled or the server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
