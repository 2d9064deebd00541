// Package router maps console locations such as /admin/tickets/42 to named
// screens and keeps a back-navigable history. Protected locations pass
// through the guard before they are entered.
package router

import (
	"strings"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
)

// Route names. The CLI picks a screen by name.
const (
	Home         = "home"
	Login        = "login"
	Dashboard    = "dashboard"
	Profile      = "profile"
	Users        = "users"
	UserDetail   = "user"
	Tickets      = "tickets"
	TicketDetail = "ticket"
	Bookings     = "bookings"
	BookSeats    = "book-seats"
)

// BookSeatsPath is the seat selection screen; leaving it resets the widget.
const BookSeatsPath = "/admin/book-seats"

type Route struct {
	Name      string
	Pattern   string
	Protected bool
}

// DefaultRoutes is the console's route table.
func DefaultRoutes() []Route {
	return []Route{
		{Name: Home, Pattern: "/"},
		{Name: Login, Pattern: common.LoginPath},
		{Name: Dashboard, Pattern: common.LandingPath, Protected: true},
		{Name: Profile, Pattern: "/admin/profile", Protected: true},
		{Name: Users, Pattern: "/admin/users", Protected: true},
		{Name: UserDetail, Pattern: "/admin/users/:id", Protected: true},
		{Name: Tickets, Pattern: "/admin/tickets", Protected: true},
		{Name: TicketDetail, Pattern: "/admin/tickets/:id", Protected: true},
		{Name: Bookings, Pattern: "/admin/bookings", Protected: true},
		{Name: BookSeats, Pattern: BookSeatsPath, Protected: true},
	}
}

// match reports whether path fits pattern and extracts ":name" segments.
func match(pattern, path string) (map[string]string, bool) {
	ps := split(pattern)
	xs := split(path)
	if len(ps) != len(xs) {
		return nil, false
	}

	params := map[string]string{}
	for i, p := range ps {
		if strings.HasPrefix(p, ":") {
			if xs[i] == "" {
				return nil, false
			}
			params[p[1:]] = xs[i]
			continue
		}
		if p != xs[i] {
			return nil, false
		}
	}
	return params, true
}

func split(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Clean normalizes user input: leading slash, no trailing slash.
func Clean(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		return "/"
	}
	return path
}
