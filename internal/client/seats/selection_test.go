package seats

import (
	"strings"
	"testing"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ClassifiesDefaultLayout(t *testing.T) {
	s := NewDefault(DefaultUnitPrice)

	assert.Equal(t, Placeholder, s.Status(0))
	assert.Equal(t, Placeholder, s.Status(3), "driver")
	assert.Equal(t, Placeholder, s.Status(2), "listed as occupied but still a placeholder")
	assert.Equal(t, Available, s.Status(4))
	assert.Equal(t, Occupied, s.Status(7))
	assert.Equal(t, Placeholder, s.Status(99))

	_, st, ok := s.Lookup("Kha")
	require.True(t, ok)
	assert.Equal(t, Occupied, st)

	_, _, ok = s.Lookup(DriverLabel)
	assert.False(t, ok)
}

func TestToggle_Idempotence(t *testing.T) {
	s := NewDefault(DefaultUnitPrice)

	for _, label := range []string{"A", "B", "Ka", "GHA", "B12"} {
		twice := s.Toggle(label).Toggle(label)
		assert.Equal(t, s.Labels(), twice.Labels(), label)
		assert.Zero(t, twice.Count(), label)
	}
}

func TestToggle_NoOps(t *testing.T) {
	s := NewDefault(DefaultUnitPrice)

	for _, label := range []string{"Kha", "A2", "", DriverLabel, "Z9"} {
		assert.Zero(t, s.Toggle(label).Count(), label)
	}
}

func TestToggle_ReturnsNewValue(t *testing.T) {
	a := NewDefault(DefaultUnitPrice)
	b := a.Toggle("A")
	c := b.Toggle("B")

	assert.Empty(t, a.Labels())
	assert.Equal(t, []string{"A"}, b.Labels())
	assert.Equal(t, []string{"A", "B"}, c.Labels())
}

func TestLabels_GridOrder(t *testing.T) {
	s := NewDefault(DefaultUnitPrice).Toggle("B12").Toggle("A").Toggle("B1")
	assert.Equal(t, []string{"A", "B1", "B12"}, s.Labels())
}

func TestTotalPrice(t *testing.T) {
	s := NewDefault(1200).Toggle("A").Toggle("B").Toggle("C")
	assert.Equal(t, int64(3600), s.TotalPrice())
	assert.Equal(t, int64(1200), s.UnitPrice())
}

func TestSubmit(t *testing.T) {
	empty := NewDefault(DefaultUnitPrice)

	_, err := empty.Submit()
	var vErr *common.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MsgNoSeats, vErr.Field("seats"))

	one := empty.Toggle("B1")
	res, err := one.Submit()
	require.NoError(t, err)
	assert.Equal(t, Result{Seats: []string{"B1"}, Total: 1200}, res)
	assert.Equal(t, "Seats booked successfully: B1 | Total: NPR 1200", res.String())

	again, err := one.Submit()
	require.NoError(t, err)
	assert.Equal(t, res, again, "submit leaves the selection unchanged")
}

func TestNew_IgnoresOutOfRangeOccupied(t *testing.T) {
	s := New(Layout{{"X", "Y"}}, []int{-1, 1, 5}, 10)
	assert.Equal(t, Available, s.Status(0))
	assert.Equal(t, Occupied, s.Status(1))
}

func TestZeroSelection(t *testing.T) {
	var s Selection
	assert.Zero(t, s.Toggle("A").Count())
	assert.Empty(t, Render(s))
}

func TestRender_ShowsSeatsAndTotal(t *testing.T) {
	out := Render(NewDefault(DefaultUnitPrice).Toggle("A").Toggle("B"))

	for _, want := range []string{"DRV", "Kha", "B12", "available", "Selected: A, B", "Total: NPR 2400 (2 x 1200)"} {
		assert.True(t, strings.Contains(out, want), "missing %q in\n%s", want, out)
	}
}
