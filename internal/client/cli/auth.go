package cli

import (
	"context"
	"errors"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/login"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/router"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/seats"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/state"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login runs the login form. It moves to the login location first when
// needed; an existing session skips the prompts and goes straight to the
// page the user asked for. Field messages and the error banner are printed
// on failure, and the form keeps the entered identifier.
func (a *App) Login(ctx context.Context) error {
	cur := a.router.Current()
	if cur.Route.Name != router.Login {
		out, err := a.router.Navigate(ctx, common.LoginPath)
		if err != nil {
			return err
		}
		cur = out.Location
	}

	redirected, err := a.flow.Mount(ctx, cur.From)
	if err != nil {
		return err
	}
	if redirected {
		a.println("Already logged in.")
		return a.showCurrent(ctx)
	}

	identifier, err := getSimpleText(a.reader, "Email or Phone", a.flow.Identifier, a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.flow.Identifier = identifier
	a.flow.Secret = string(password)

	err = a.flow.Submit(ctx)
	var vErr *common.ValidationError
	switch {
	case errors.As(err, &vErr):
		for _, field := range []string{login.FieldUsername, login.FieldPassword} {
			if msg := a.flow.FieldError(field); msg != "" {
				a.println(msg)
			}
		}
		return err
	case err != nil:
		a.println(a.flow.Banner())
		return err
	}

	a.printf("Welcome, %s!\n", a.store.Auth().User.Name())
	return a.showCurrent(ctx)
}

// Logout forgets the session and goes to the login location. It never
// fails.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.store.Dispatch(state.Logout{})
	a.seats = seats.NewDefault(a.config.SeatPrice)

	a.println("Logged out.")
	_, err := a.router.Navigate(ctx, common.LoginPath)
	if err != nil {
		return err
	}
	return a.showCurrent(ctx)
}

func (a *App) WhoAmI(_ context.Context) error {
	auth := a.store.Auth()
	if !auth.IsAuthenticated {
		a.println("Not logged in.")
		return nil
	}
	u := auth.User
	a.printf("Name:     %s\nUsername: %s\nEmail:    %s\nRole:     %s\n",
		u.Name(), u.Display("username"), u.Display("email"), u.Display("role"))
	return nil
}

// Verify asks the server whether the stored token is still accepted. A
// rejected token is reported but kept.
func (a *App) Verify(ctx context.Context) error {
	if a.session.VerifyToken(ctx) {
		a.println("Token is valid.")
	} else {
		a.println("Token was not accepted by the server.")
	}
	return nil
}
