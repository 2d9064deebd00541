package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/models"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/router"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
)

func (a *App) dashboardScreen(ctx context.Context) error {
	tickets, err := a.catalog.Tickets(ctx)
	if err != nil {
		return err
	}
	users, err := a.catalog.Users(ctx)
	if err != nil {
		return err
	}
	bookings, err := a.catalog.Bookings(ctx)
	if err != nil {
		return err
	}

	body := fmt.Sprintf("Tickets:  %d\nUsers:    %d\nBookings: %d", len(tickets), len(users), len(bookings))
	a.println(a.frame("Dashboard", body))
	return nil
}

func (a *App) profileScreen(_ context.Context) error {
	a.println(a.frame("Profile", userDetails(a.store.Auth().User)))
	return nil
}

func (a *App) usersScreen(ctx context.Context) error {
	users, err := a.catalog.Users(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{userID(u), u.Name(), u.Display("email"), u.Display("phone"), u.Display("role")})
	}
	a.println(a.frame("Users", a.table([]string{"ID", "Name", "Email", "Phone", "Role"}, rows)))
	return nil
}

func (a *App) userScreen(ctx context.Context, id string) error {
	u, err := a.catalog.User(ctx, id)
	if err != nil {
		return err
	}
	a.println(a.frame("User "+id, userDetails(u)))
	return nil
}

func (a *App) ticketsScreen(ctx context.Context) error {
	tickets, err := a.catalog.Tickets(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, []string{t.ID, orNA(t.BussName), t.Route(), orNA(t.Date), orNA(t.DepartureTime), price(t.Price)})
	}
	a.println(a.frame("Tickets", a.table([]string{"ID", "Bus", "Route", "Date", "Departure", "Price"}, rows)))
	return nil
}

func (a *App) ticketScreen(ctx context.Context, id string) error {
	t, err := a.catalog.Ticket(ctx, id)
	if err != nil {
		return err
	}

	lines := []string{
		"Operator:   " + orNA(t.OperatorName),
		"Bus:        " + orNA(t.BussName) + " (" + orNA(t.BussNo) + ")",
		"Vehicle:    " + orNA(t.VehicleType),
		"Route:      " + t.Route(),
		"Date:       " + orNA(t.Date),
		"Departure:  " + orNA(t.DepartureTime),
		"Arrival:    " + orNA(t.ArrivalTime),
		"Duration:   " + orNA(t.TotalTimeTaken),
		"Shift:      " + orNA(t.Shift),
		"Seats:      " + strconv.Itoa(t.TotalSeats),
		"Price:      " + price(t.Price),
	}
	a.println(a.frame("Ticket "+id, strings.Join(lines, "\n")))
	return nil
}

func (a *App) bookingsScreen(ctx context.Context) error {
	bookings, err := a.catalog.Bookings(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, []string{
			b.ID, orNA(b.TicketID), orNA(strings.Join(b.Seats, ",")),
			fmt.Sprintf("NPR %d", b.Amount), orNA(b.Status), orNA(b.BookedAt),
		})
	}
	a.println(a.frame("Bookings", a.table([]string{"ID", "Ticket", "Seats", "Amount", "Status", "Booked at"}, rows)))
	return nil
}

// DeleteTicket asks for confirmation, deletes the ticket and refreshes the
// screen that showed it.
func (a *App) DeleteTicket(ctx context.Context, id string) error {
	ok, err := a.confirm(fmt.Sprintf("Delete ticket %s? (y/N)", id))
	if err != nil || !ok {
		return err
	}

	if err := a.catalog.DeleteTicket(ctx, id); err != nil {
		return a.fail(ctx, err)
	}
	a.println("Ticket deleted.")
	return a.afterDelete(ctx, id, router.TicketDetail, router.Tickets, "/admin/tickets")
}

func userID(u models.User) string {
	if id := u.Field("_id"); id != "" {
		return id
	}
	return u.Display("id")
}

func userDetails(u models.User) string {
	return strings.Join([]string{
		"Name:     " + u.Name(),
		"Username: " + u.Display("username"),
		"Email:    " + u.Display("email"),
		"Phone:    " + u.Display("phone"),
		"Address:  " + u.Display("address"),
		"Role:     " + u.Display("role"),
	}, "\n")
}

func orNA(s string) string {
	if s == "" {
		return common.Placeholder
	}
	return s
}

func price(p float64) string {
	return "NPR " + strconv.FormatFloat(p, 'f', -1, 64)
}
