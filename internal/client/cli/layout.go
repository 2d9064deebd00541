package cli

import (
	"context"
	"strings"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type palette struct {
	header lipgloss.Style
	border lipgloss.Color
}

var themes = map[string]palette{
	state.ThemeLight: {
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7")).Padding(0, 1),
		border: lipgloss.Color("4"),
	},
	state.ThemeDark: {
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")).Padding(0, 1),
		border: lipgloss.Color("13"),
	},
}

var navItems = []string{"dashboard", "profile", "users", "tickets", "bookings", "book"}

func (a *App) palette() palette {
	if p, ok := themes[a.store.State().Theme]; ok {
		return p
	}
	return themes[state.ThemeLight]
}

// frame puts a title bar above body and, when the sidebar is shown and a
// user is logged in, the navigation menu to its left.
func (a *App) frame(title, body string) string {
	s := a.store.State()
	p := a.palette()

	header := p.header.Render(title)
	if s.Auth.IsAuthenticated {
		header += "  " + s.Auth.User.Name()
	}

	content := body
	if s.SidebarShow && s.Auth.IsAuthenticated {
		sidebar := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(p.border).
			PaddingRight(1).
			MarginRight(1).
			Render(strings.Join(navItems, "\n"))
		content = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content)
}

func (a *App) table(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return "No records."
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(a.palette().border)).
		Headers(headers...).
		Rows(rows...).
		String()
}

func (a *App) ToggleSidebar(_ context.Context) error {
	show := !a.store.State().SidebarShow
	a.store.Dispatch(state.Set{SidebarShow: state.Bool(show)})
	if show {
		a.println("Sidebar shown.")
	} else {
		a.println("Sidebar hidden.")
	}
	return nil
}

func (a *App) SetTheme(_ context.Context, theme string) error {
	if _, ok := themes[theme]; !ok {
		a.printf("Unknown theme %q (use light or dark).\n", theme)
		return nil
	}
	a.store.Dispatch(state.Set{Theme: state.String(theme)})
	a.printf("Theme set to %s.\n", theme)
	return nil
}
