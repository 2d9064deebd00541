// Package seats is the seat selection widget of the booking screen: a fixed
// grid of seats, each available, occupied or a placeholder, and the set the
// user has picked. Selection is a value; every change returns a new one.
package seats

import (
	"fmt"
	"strings"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
)

type Status int

const (
	Available Status = iota
	Selected
	Occupied
	Placeholder
)

func (s Status) String() string {
	return [...]string{"available", "selected", "occupied", "placeholder"}[s]
}

// DriverLabel marks the driver's position. It and "" are never bookable.
const DriverLabel = "Driver"

// MsgNoSeats is the validation message of an empty submit.
const MsgNoSeats = "Please select at least one seat."

// DefaultUnitPrice is the per-seat price in NPR.
const DefaultUnitPrice int64 = 1200

// Layout is the seat grid, row by row. All rows have the same width.
type Layout [][]string

// DefaultLayout is the bus used by the booking screen: driver in the top
// right, then eight rows of four.
func DefaultLayout() Layout {
	return Layout{
		{"", "", "", DriverLabel},
		{"A", "B", "Ka", "Kha"},
		{"C", "D", "GA", "GHA"},
		{"A1", "A2", "B1", "B2"},
		{"A3", "A4", "B3", "B4"},
		{"A5", "A6", "B5", "B6"},
		{"A7", "A8", "B7", "B8"},
		{"A9", "A10", "B9", "B10"},
		{"A11", "A12", "B11", "B12"},
	}
}

// DefaultOccupied lists taken seats by grid index (row*width + col).
func DefaultOccupied() []int {
	return []int{2, 7, 12, 13, 15, 16, 18, 19, 21, 22, 24, 25, 27, 28, 30, 31}
}

// grid is the immutable part shared by every Selection derived from the
// same New call.
type grid struct {
	width  int
	labels []string
	fixed  []Status
	index  map[string]int
}

type Selection struct {
	g         *grid
	selected  []bool
	count     int
	unitPrice int64
}

// New classifies every slot once. Occupied indexes outside the grid are
// ignored, and placeholders stay placeholders even if listed as occupied.
func New(layout Layout, occupied []int, unitPrice int64) Selection {
	g := &grid{index: map[string]int{}}
	if len(layout) > 0 {
		g.width = len(layout[0])
	}

	for _, row := range layout {
		for _, label := range row {
			idx := len(g.labels)
			g.labels = append(g.labels, label)
			if label == "" || label == DriverLabel {
				g.fixed = append(g.fixed, Placeholder)
				continue
			}
			g.fixed = append(g.fixed, Available)
			if _, dup := g.index[label]; !dup {
				g.index[label] = idx
			}
		}
	}

	for _, idx := range occupied {
		if idx >= 0 && idx < len(g.fixed) && g.fixed[idx] == Available {
			g.fixed[idx] = Occupied
		}
	}

	return Selection{g: g, selected: make([]bool, len(g.labels)), unitPrice: unitPrice}
}

// NewDefault is the booking screen's widget at mount.
func NewDefault(unitPrice int64) Selection {
	return New(DefaultLayout(), DefaultOccupied(), unitPrice)
}

// Status reports the state of the seat at a grid index.
func (s Selection) Status(idx int) Status {
	if s.g == nil || idx < 0 || idx >= len(s.g.fixed) {
		return Placeholder
	}
	if s.selected[idx] {
		return Selected
	}
	return s.g.fixed[idx]
}

// Lookup finds a bookable label. ok is false for unknown labels and
// placeholders.
func (s Selection) Lookup(label string) (idx int, status Status, ok bool) {
	if s.g == nil {
		return 0, Placeholder, false
	}
	idx, ok = s.g.index[label]
	if !ok {
		return 0, Placeholder, false
	}
	return idx, s.Status(idx), true
}

// Toggle flips label in or out of the selection. Occupied seats,
// placeholders and unknown labels leave the selection as it is.
func (s Selection) Toggle(label string) Selection {
	idx, status, ok := s.Lookup(label)
	if !ok || (status != Available && status != Selected) {
		return s
	}

	next := s
	next.selected = make([]bool, len(s.selected))
	copy(next.selected, s.selected)
	next.selected[idx] = !next.selected[idx]
	if next.selected[idx] {
		next.count++
	} else {
		next.count--
	}
	return next
}

// Labels returns the selected seats in grid order.
func (s Selection) Labels() []string {
	out := make([]string, 0, s.count)
	for idx, on := range s.selected {
		if on {
			out = append(out, s.g.labels[idx])
		}
	}
	return out
}

func (s Selection) Count() int { return s.count }

func (s Selection) UnitPrice() int64 { return s.unitPrice }

func (s Selection) TotalPrice() int64 {
	return int64(s.count) * s.unitPrice
}

// Result is what the widget reports to the booking screen.
type Result struct {
	Seats []string
	Total int64
}

func (r Result) String() string {
	return fmt.Sprintf("Seats booked successfully: %s | Total: NPR %d", strings.Join(r.Seats, ", "), r.Total)
}

// Submit reports the current selection. It does not change it, so repeated
// submits give the same Result.
func (s Selection) Submit() (Result, error) {
	if s.count == 0 {
		return Result{}, common.NewValidationError("seats", MsgNoSeats)
	}
	return Result{Seats: s.Labels(), Total: s.TotalPrice()}, nil
}
