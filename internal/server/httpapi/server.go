// Package httpapi serves the stub admin API over echo.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/logging"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/server/catalog"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	users   *users.Service
	catalog *catalog.Service
	logger  logging.Logger
	echo    *echo.Echo
}

func NewServer(address string, l logging.Logger, us *users.Service, cs *catalog.Service) *Server {
	s := &Server{
		address: address,
		users:   us,
		catalog: cs,
		logger:  l.With("module", "http_server"),
	}
	s.echo = s.routes()
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID)
			return nil
		},
	}))

	e.GET("/healthz", s.health)

	api := e.Group("/api")
	api.POST("/admin/login", s.login)
	api.GET("/verify-token", s.verifyToken)

	admin := api.Group("/admin", s.requireToken)
	admin.GET("/getAllTicket", s.listTickets)
	admin.POST("/tickets", s.createTicket)
	admin.GET("/tickets/:id", s.getTicket)
	admin.PUT("/tickets/:id", s.updateTicket)
	admin.DELETE("/tickets/:id", s.deleteTicket)
	admin.GET("/getAllUsers", s.listUsers)
	admin.POST("/users", s.createUser)
	admin.GET("/users/:id", s.getUser)
	admin.PUT("/users/:id", s.updateUser)
	admin.DELETE("/users/:id", s.deleteUser)
	admin.GET("/bookings", s.listBookings)
	admin.POST("/bookings", s.createBooking)

	return e
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
