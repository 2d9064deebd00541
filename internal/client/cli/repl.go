package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL drives. The real App type
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Verify(ctx context.Context) error
	Go(ctx context.Context, path string) error
	Back(ctx context.Context) error
	Where(ctx context.Context) error
	ToggleSidebar(ctx context.Context) error
	SetTheme(ctx context.Context, theme string) error
	AddTicket(ctx context.Context) error
	EditTicket(ctx context.Context, id string) error
	DeleteTicket(ctx context.Context, id string) error
	AddUser(ctx context.Context) error
	EditUser(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
	Seat(ctx context.Context, label string) error
	Seats(ctx context.Context) error
	Confirm(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: login, go <path>, back, where, theme <light|dark>, sidebar, exit"
	helpMember = "Available commands: tickets, ticket <id>, addticket, editticket <id>, rmticket <id>, " +
		"users, user <id>, adduser, edituser <id>, rmuser <id>, bookings, book, seat <label>, seats, confirm, " +
		"go <path>, back, where, whoami, verify, theme <light|dark>, sidebar, logout, exit"
)

// runREPL starts the read–eval–print loop of the admin console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on a. Shortcut commands such as "tickets" are
// navigation to the matching location. The loop exits on EOF or when the
// user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. Prompts issued by a handler read from the same reader.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("admin %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		arg := func(usage string) (string, bool) {
			if len(args) == 0 {
				printlnFn("Usage:", usage)
				return "", false
			}
			return args[0], true
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpMember)
			} else {
				printlnFn(helpGuest)
			}

		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "verify":
			_ = a.Verify(ctx)

		case "go":
			if p, ok := arg("go <path>"); ok {
				_ = a.Go(ctx, p)
			}
		case "back":
			_ = a.Back(ctx)
		case "where":
			_ = a.Where(ctx)
		case "dashboard":
			_ = a.Go(ctx, "/admin/dashboard")
		case "profile":
			_ = a.Go(ctx, "/admin/profile")
		case "tickets":
			_ = a.Go(ctx, "/admin/tickets")
		case "ticket":
			if id, ok := arg("ticket <id>"); ok {
				_ = a.Go(ctx, "/admin/tickets/"+id)
			}
		case "addticket":
			_ = a.AddTicket(ctx)
		case "editticket":
			if id, ok := arg("editticket <id>"); ok {
				_ = a.EditTicket(ctx, id)
			}
		case "rmticket":
			if id, ok := arg("rmticket <id>"); ok {
				_ = a.DeleteTicket(ctx, id)
			}
		case "users":
			_ = a.Go(ctx, "/admin/users")
		case "user":
			if id, ok := arg("user <id>"); ok {
				_ = a.Go(ctx, "/admin/users/"+id)
			}
		case "adduser":
			_ = a.AddUser(ctx)
		case "edituser":
			if id, ok := arg("edituser <id>"); ok {
				_ = a.EditUser(ctx, id)
			}
		case "rmuser":
			if id, ok := arg("rmuser <id>"); ok {
				_ = a.DeleteUser(ctx, id)
			}
		case "bookings":
			_ = a.Go(ctx, "/admin/bookings")
		case "book":
			_ = a.Go(ctx, "/admin/book-seats")
		case "seat":
			if label, ok := arg("seat <label>"); ok {
				_ = a.Seat(ctx, label)
			}
		case "seats":
			_ = a.Seats(ctx)
		case "confirm":
			_ = a.Confirm(ctx)

		case "sidebar":
			_ = a.ToggleSidebar(ctx)
		case "theme":
			if theme, ok := arg("theme <light|dark>"); ok {
				_ = a.SetTheme(ctx, theme)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
