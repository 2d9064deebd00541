package cli

import (
	"context"
	"errors"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/router"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/seats"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
)

func (a *App) onBookingScreen() bool {
	if a.router.Current().Route.Name == router.BookSeats {
		return true
	}
	a.println("Open the booking screen first ('book').")
	return false
}

// Seat toggles one seat on the booking screen and redraws the map.
func (a *App) Seat(_ context.Context, label string) error {
	if !a.onBookingScreen() {
		return nil
	}

	_, status, ok := a.seats.Lookup(label)
	switch {
	case !ok:
		a.printf("No seat %q on this bus.\n", label)
		return nil
	case status == seats.Occupied:
		a.printf("Seat %s is already booked.\n", label)
		return nil
	}

	a.seats = a.seats.Toggle(label)
	a.println(seats.Render(a.seats))
	return nil
}

func (a *App) Seats(_ context.Context) error {
	if !a.onBookingScreen() {
		return nil
	}
	a.println(seats.Render(a.seats))
	return nil
}

// Confirm submits the current selection as a booking. The selection is
// left as it is, so a failed booking can be retried.
func (a *App) Confirm(ctx context.Context) error {
	if !a.onBookingScreen() {
		return nil
	}

	res, err := a.seats.Submit()
	var vErr *common.ValidationError
	if errors.As(err, &vErr) {
		a.println(vErr.Field("seats"))
		return err
	}

	booking, err := a.catalog.Book(ctx, res.Seats, res.Total)
	if err != nil {
		return a.fail(ctx, err)
	}

	a.println(res.String())
	if booking.ID != "" {
		a.printf("Booking reference: %s\n", booking.ID)
	}
	return nil
}
