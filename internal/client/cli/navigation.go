package cli

import (
	"context"
	"errors"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/guard"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/router"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/seats"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
)

// Go navigates to path and shows it.
func (a *App) Go(ctx context.Context, path string) error {
	prev := a.router.Current()
	out, err := a.router.Navigate(ctx, path)
	if err != nil {
		if errors.Is(err, common.ErrRouteNotFound) {
			a.printf("Page not found: %s\n", router.Clean(path))
		}
		return err
	}
	return a.arrive(ctx, prev, out)
}

func (a *App) Back(ctx context.Context) error {
	prev := a.router.Current()
	out, ok := a.router.Back(ctx)
	if !ok {
		a.println("Nothing to go back to.")
		return nil
	}
	return a.arrive(ctx, prev, out)
}

func (a *App) Where(_ context.Context) error {
	cur := a.router.Current()
	a.printf("Location: %s\n", cur.Path)
	if cur.From != "" {
		a.printf("After login: %s\n", cur.From)
	}
	return nil
}

func (a *App) arrive(ctx context.Context, prev router.Location, out router.Outcome) error {
	if out.Decision == guard.Loading {
		a.println("Loading...")
		return nil
	}

	if prev.Path == router.BookSeatsPath && out.Location.Path != router.BookSeatsPath {
		a.seats = seats.NewDefault(a.config.SeatPrice)
	}

	if out.Redirected {
		a.printf("Please log in to view %s.\n", out.Location.From)
	}
	return a.render(ctx, out.Location)
}

func (a *App) showCurrent(ctx context.Context) error {
	return a.render(ctx, a.router.Current())
}

// render draws the screen for loc. Failures are printed here; a session
// expiry has already moved the router to login, so that is drawn instead.
func (a *App) render(ctx context.Context, loc router.Location) error {
	var err error
	switch loc.Route.Name {
	case router.Home:
		a.println(a.frame("Home", "Bus ticketing administration.\nUse 'login' to sign in or 'help' for commands."))
	case router.Login:
		err = a.loginScreen(ctx, loc)
	case router.Dashboard:
		err = a.dashboardScreen(ctx)
	case router.Profile:
		err = a.profileScreen(ctx)
	case router.Users:
		err = a.usersScreen(ctx)
	case router.UserDetail:
		err = a.userScreen(ctx, loc.Param("id"))
	case router.Tickets:
		err = a.ticketsScreen(ctx)
	case router.TicketDetail:
		err = a.ticketScreen(ctx, loc.Param("id"))
	case router.Bookings:
		err = a.bookingsScreen(ctx)
	case router.BookSeats:
		a.println(a.frame("Book seats", seats.Render(a.seats)))
	}

	if err != nil {
		return a.fail(ctx, err)
	}
	return nil
}

// fail reports err to the user. A session expiry prints no message: the
// router is already on login, so that screen is drawn instead.
func (a *App) fail(ctx context.Context, err error) error {
	if errors.As(err, new(*common.SessionExpiredError)) {
		if cur := a.router.Current(); cur.Route.Name == router.Login {
			_ = a.loginScreen(ctx, cur)
		}
		return err
	}
	a.println(common.DisplayMessage(err, "Something went wrong. Please try again."))
	return err
}

func (a *App) loginScreen(ctx context.Context, loc router.Location) error {
	redirected, err := a.flow.Mount(ctx, loc.From)
	if err != nil {
		return err
	}
	if redirected {
		return a.showCurrent(ctx)
	}

	body := "Sign in with 'login'."
	if a.flow.Identifier != "" {
		body = "Email or Phone: " + a.flow.Identifier + "\n" + body
	}
	if banner := a.flow.Banner(); banner != "" {
		body = banner + "\n" + body
	}
	a.println(a.frame("Login", body))
	return nil
}
