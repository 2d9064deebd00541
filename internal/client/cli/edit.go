package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/models"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/router"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
)

// AddTicket prompts for a new ticket, creates it and shows it.
func (a *App) AddTicket(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	t, err := a.inputTicket(models.Ticket{})
	if err != nil {
		return a.inputFailed(err)
	}

	created, err := a.catalog.CreateTicket(ctx, t)
	if err != nil {
		return a.fail(ctx, err)
	}
	a.printf("Ticket created: %s\n", created.ID)
	return a.Go(ctx, "/admin/tickets/"+created.ID)
}

// EditTicket loads the ticket, prompts for every field with the current
// value as default, and saves the result.
func (a *App) EditTicket(ctx context.Context, id string) error {
	if !a.requireLogin() {
		return nil
	}

	current, err := a.catalog.Ticket(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}

	t, err := a.inputTicket(current)
	if err != nil {
		return a.inputFailed(err)
	}

	if _, err := a.catalog.UpdateTicket(ctx, id, t); err != nil {
		return a.fail(ctx, err)
	}
	a.println("Ticket updated.")
	return a.Go(ctx, "/admin/tickets/"+id)
}

// AddUser prompts for a new account, creates it and shows it.
func (a *App) AddUser(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	username, err := getSimpleText(a.reader, "Enter username", "", a.out)
	if err != nil {
		return a.inputFailed(err)
	}
	form, err := a.inputProfile(models.User{"role": "user"})
	if err != nil {
		return a.inputFailed(err)
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return a.inputFailed(err)
	}
	defer common.WipeByteArray(password)

	form.Username = username
	form.Password = string(password)

	created, err := a.catalog.CreateUser(ctx, form)
	if err != nil {
		return a.fail(ctx, err)
	}
	id := userID(created)
	a.printf("User created: %s\n", id)
	return a.Go(ctx, "/admin/users/"+id)
}

// EditUser loads the user and prompts for the profile fields with the
// current values as defaults. Username and password are not editable.
func (a *App) EditUser(ctx context.Context, id string) error {
	if !a.requireLogin() {
		return nil
	}

	current, err := a.catalog.User(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}

	form, err := a.inputProfile(current)
	if err != nil {
		return a.inputFailed(err)
	}

	if _, err := a.catalog.UpdateUser(ctx, id, form); err != nil {
		return a.fail(ctx, err)
	}
	a.println("User updated.")
	return a.Go(ctx, "/admin/users/"+id)
}

// DeleteUser asks for confirmation, deletes the user and refreshes the
// screen that showed it.
func (a *App) DeleteUser(ctx context.Context, id string) error {
	ok, err := a.confirm(fmt.Sprintf("Delete user %s? (y/N)", id))
	if err != nil || !ok {
		return err
	}

	if err := a.catalog.DeleteUser(ctx, id); err != nil {
		return a.fail(ctx, err)
	}
	a.println("User deleted.")
	return a.afterDelete(ctx, id, router.UserDetail, router.Users, "/admin/users")
}

func (a *App) inputTicket(t models.Ticket) (models.Ticket, error) {
	text := []struct {
		prompt string
		field  *string
	}{
		{"Enter operator name", &t.OperatorName},
		{"Enter bus name", &t.BussName},
		{"Enter bus number", &t.BussNo},
		{"Enter vehicle type", &t.VehicleType},
		{"Enter origin", &t.From},
		{"Enter destination", &t.To},
		{"Enter date (YYYY-MM-DD)", &t.Date},
		{"Enter departure time", &t.DepartureTime},
		{"Enter arrival time", &t.ArrivalTime},
		{"Enter travel time", &t.TotalTimeTaken},
		{"Enter shift", &t.Shift},
	}
	for _, f := range text {
		v, err := getSimpleText(a.reader, f.prompt, *f.field, a.out)
		if err != nil {
			return t, err
		}
		*f.field = v
	}

	var def string
	if t.Price != 0 {
		def = strconv.FormatFloat(t.Price, 'f', -1, 64)
	}
	v, err := getSimpleText(a.reader, "Enter price (NPR)", def, a.out)
	if err != nil {
		return t, err
	}
	if t.Price, err = parseNumber(v, "price", "Price must be a number.", func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }); err != nil {
		return t, err
	}

	def = ""
	if t.TotalSeats != 0 {
		def = strconv.Itoa(t.TotalSeats)
	}
	v, err = getSimpleText(a.reader, "Enter total seats", def, a.out)
	if err != nil {
		return t, err
	}
	if t.TotalSeats, err = parseNumber(v, "totalSeats", "Total seats must be a whole number.", strconv.Atoi); err != nil {
		return t, err
	}
	return t, nil
}

func (a *App) inputProfile(u models.User) (models.UserForm, error) {
	var f models.UserForm
	fields := []struct {
		prompt string
		key    string
		field  *string
	}{
		{"Enter name", "name", &f.Name},
		{"Enter email", "email", &f.Email},
		{"Enter phone", "phone", &f.Phone},
		{"Enter address", "address", &f.Address},
		{"Enter role (user or admin)", "role", &f.Role},
	}
	for _, p := range fields {
		v, err := getSimpleText(a.reader, p.prompt, u.Field(p.key), a.out)
		if err != nil {
			return f, err
		}
		*p.field = v
	}
	return f, nil
}

// parseNumber reads an optional number; "" is zero.
func parseNumber[T int | float64](s, field, msg string, parse func(string) (T, error)) (T, error) {
	if s == "" {
		return 0, nil
	}
	n, err := parse(s)
	if err != nil {
		return 0, common.NewValidationError(field, msg)
	}
	return n, nil
}

// inputFailed reports a form that could not be read or parsed. Nothing was
// sent to the server.
func (a *App) inputFailed(err error) error {
	var vErr *common.ValidationError
	if errors.As(err, &vErr) {
		for _, msg := range vErr.Fields {
			a.println(msg)
		}
	}
	return err
}

func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	a.println("Please log in first.")
	return false
}

// confirm asks a y/N question; anything but y or yes cancels.
func (a *App) confirm(question string) (bool, error) {
	answer, err := getSimpleText(a.reader, question, "", a.out)
	if err != nil {
		return false, err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		a.println("Cancelled.")
		return false, nil
	}
	return true, nil
}

// afterDelete leaves the detail page of a deleted record for its list, or
// redraws the list when that is what is shown.
func (a *App) afterDelete(ctx context.Context, id string, detail, list, listPath string) error {
	cur := a.router.Current()
	switch {
	case cur.Route.Name == detail && cur.Param("id") == id:
		out, err := a.router.Redirect(ctx, listPath)
		if err != nil {
			return err
		}
		return a.render(ctx, out.Location)
	case cur.Route.Name == list:
		return a.showCurrent(ctx)
	}
	return nil
}
