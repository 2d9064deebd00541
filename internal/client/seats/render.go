package seats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	green = lipgloss.Color("2")
	red   = lipgloss.Color("1")
	grey  = lipgloss.Color("8")
	blue  = lipgloss.Color("4")

	seatBase = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder())

	seatStyles = map[Status]lipgloss.Style{
		Available: seatBase.BorderForeground(green).Foreground(green),
		Selected:  seatBase.BorderForeground(red).Foreground(red).Bold(true),
		Occupied:  seatBase.BorderForeground(grey).Foreground(grey).Faint(true),
	}

	driverStyle = seatBase.BorderForeground(blue).Foreground(blue).Bold(true)
	emptyStyle  = seatBase.Border(lipgloss.HiddenBorder())
	aisle       = lipgloss.NewStyle().Width(3).Render("")
	summary     = lipgloss.NewStyle().MarginTop(1)
)

// Render draws the seat map followed by a legend and the running total.
// Rows are split into two halves by an aisle.
func Render(s Selection) string {
	if s.g == nil || s.g.width == 0 {
		return ""
	}

	rows := make([]string, 0, len(s.g.labels)/s.g.width)
	for start := 0; start < len(s.g.labels); start += s.g.width {
		cells := make([]string, 0, s.g.width+1)
		for col := 0; col < s.g.width; col++ {
			if col == s.g.width/2 {
				cells = append(cells, aisle)
			}
			cells = append(cells, renderSeat(s, start+col))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	legend := strings.Join([]string{
		lipgloss.NewStyle().Foreground(green).Render("available"),
		lipgloss.NewStyle().Foreground(red).Render("selected"),
		lipgloss.NewStyle().Foreground(grey).Render("occupied"),
	}, "  ")

	selected := "none"
	if labels := s.Labels(); len(labels) > 0 {
		selected = strings.Join(labels, ", ")
	}
	total := fmt.Sprintf("Selected: %s\nTotal: NPR %d (%d x %d)", selected, s.TotalPrice(), s.Count(), s.unitPrice)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		summary.Render(legend),
		summary.Render(total),
	)
}

func renderSeat(s Selection, idx int) string {
	label := s.g.labels[idx]
	switch {
	case label == DriverLabel:
		return driverStyle.Render("DRV")
	case label == "":
		return emptyStyle.Render("")
	}
	return seatStyles[s.Status(idx)].Render(label)
}
