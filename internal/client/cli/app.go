package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/api"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/config"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/guard"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/login"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/models"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/router"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/seats"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/services"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/state"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/storage"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/tokenstore"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/logging"
)

// Catalog is what the protected screens read and change.
type Catalog interface {
	Tickets(ctx context.Context) ([]models.Ticket, error)
	Ticket(ctx context.Context, id string) (models.Ticket, error)
	CreateTicket(ctx context.Context, t models.Ticket) (models.Ticket, error)
	UpdateTicket(ctx context.Context, id string, t models.Ticket) (models.Ticket, error)
	DeleteTicket(ctx context.Context, id string) error
	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, id string) (models.User, error)
	CreateUser(ctx context.Context, f models.UserForm) (models.User, error)
	UpdateUser(ctx context.Context, id string, f models.UserForm) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
	Bookings(ctx context.Context) ([]models.Booking, error)
	Book(ctx context.Context, seats []string, amount int64) (models.Booking, error)
}

type App struct {
	config *config.Config
	log    logging.Logger
	out    io.Writer
	reader *bufio.Reader

	session services.SessionService
	catalog Catalog
	store   *state.Store
	router  *router.Router
	flow    *login.Flow
	seats   seats.Selection

	closers []func() error
}

// NewApp opens the Token Store at c.DBPath and wires the console against
// the API at c.BaseURL(), reading commands from stdin.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	tokens := tokenstore.NewSQLiteStore(db, log)
	a, err := newApp(ctx, c, log, tokens, http.DefaultClient, os.Stdin, os.Stdout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.closers = append(a.closers, db.Close)
	return a, nil
}

func newApp(ctx context.Context, c *config.Config, log logging.Logger, tokens tokenstore.Store, hc *http.Client, in io.Reader, out io.Writer) (*App, error) {
	checker, err := services.NewTokenChecker(c.TokenCheck)
	if err != nil {
		return nil, err
	}

	session := services.NewSessionService(api.NewHTTPClient(c.BaseURL(), hc), tokens, checker, log)
	authClient := api.NewAuthClient(c.BaseURL(), hc, tokens)

	store := state.NewStore(state.Bootstrap(ctx, session))
	r := router.New(router.DefaultRoutes(), guard.New(store, session))

	a := &App{
		config:  c,
		log:     log,
		out:     out,
		reader:  bufio.NewReader(in),
		session: session,
		catalog: services.NewCatalogService(authClient, c.RequestTimeout),
		store:   store,
		router:  r,
		flow:    login.NewFlow(session, store, r, c.RequestTimeout, log),
		seats:   seats.NewDefault(c.SeatPrice),
	}

	authClient.OnSessionExpired(a.expireSession)

	unsubscribe := store.Subscribe(func(s state.State) {
		log.Debug(context.Background(), "state changed",
			"authenticated", s.Auth.IsAuthenticated,
			"loading", s.Auth.Loading,
			"sidebar", s.SidebarShow,
			"theme", s.Theme)
	})
	a.closers = append(a.closers, func() error { unsubscribe(); return nil })

	return a, nil
}

// expireSession runs when a protected call gets a 401: the session is
// dropped and the current location is re-entered, which the guard turns
// into a redirect to login that remembers where the user was.
func (a *App) expireSession(ctx context.Context) {
	a.log.Warn(ctx, "session expired", "location", a.router.Current().Path)
	a.session.Logout(ctx)
	a.store.Dispatch(state.Logout{})
	if _, err := a.router.Redirect(ctx, a.router.Current().Path); err != nil {
		a.log.Error(ctx, "redirect after session expiry failed", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.Auth().IsAuthenticated
}

// Run shows the landing location and starts the REPL. It blocks until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.println("Bus booking admin console (type 'help' for commands)")
	_ = a.Go(ctx, common.LandingPath)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (a *App) getStatus() string {
	s := a.store.State()
	name := "guest"
	if s.Auth.IsAuthenticated {
		name = s.Auth.User.Name()
	}
	return fmt.Sprintf("(%s %s)", name, s.Theme)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
