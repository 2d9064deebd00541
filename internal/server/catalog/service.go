package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
)

// Service is an in-memory catalog. Lists keep insertion order.
type Service struct {
	mu       sync.RWMutex
	tickets  []Ticket
	bookings []Booking
	now      func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

func (s *Service) Tickets(_ context.Context) []Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tickets)
}

func (s *Service) Ticket(_ context.Context, id string) (Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.ticketIndex(id)
	if i < 0 {
		return Ticket{}, common.ErrNotFound
	}
	return s.tickets[i], nil
}

// AddTicket stores t under a fresh id and returns it.
func (s *Service) AddTicket(_ context.Context, t Ticket) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = uuid.NewString()
	s.tickets = append(s.tickets, t)
	return t
}

// CreateTicket validates t and stores it under a fresh id.
func (s *Service) CreateTicket(ctx context.Context, t Ticket) (Ticket, error) {
	if err := validateTicket(t); err != nil {
		return Ticket{}, err
	}
	return s.AddTicket(ctx, t), nil
}

// UpdateTicket replaces every field of the ticket with the given id.
func (s *Service) UpdateTicket(_ context.Context, id string, t Ticket) (Ticket, error) {
	if err := validateTicket(t); err != nil {
		return Ticket{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ticketIndex(id)
	if i < 0 {
		return Ticket{}, common.ErrNotFound
	}
	t.ID = id
	s.tickets[i] = t
	return t, nil
}

func (s *Service) DeleteTicket(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ticketIndex(id)
	if i < 0 {
		return common.ErrNotFound
	}
	s.tickets = slices.Delete(s.tickets, i, i+1)
	return nil
}

func (s *Service) Bookings(_ context.Context) []Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Booking, len(s.bookings))
	for i, b := range s.bookings {
		b.Seats = slices.Clone(b.Seats)
		out[i] = b
	}
	return out
}

// Book records a confirmed booking. An unknown ticket id is rejected; an
// empty one is allowed since the console books against a single bus.
func (s *Service) Book(_ context.Context, ticketID, userID string, seats []string, amount int64) (Booking, error) {
	if len(seats) == 0 {
		return Booking{}, common.NewValidationError("seats", "at least one seat is required")
	}
	if amount < 0 {
		return Booking{}, common.NewValidationError("amount", "amount must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ticketID != "" && s.ticketIndex(ticketID) < 0 {
		return Booking{}, fmt.Errorf("ticket %s: %w", ticketID, common.ErrNotFound)
	}

	b := Booking{
		ID:       uuid.NewString(),
		TicketID: ticketID,
		UserID:   userID,
		Seats:    slices.Clone(seats),
		Amount:   amount,
		Status:   StatusConfirmed,
		Gateway:  "counter",
		BookedAt: s.now().UTC().Format(time.RFC3339),
	}
	s.bookings = append(s.bookings, b)
	return b, nil
}

func validateTicket(t Ticket) error {
	fields := map[string]string{}
	if strings.TrimSpace(t.From) == "" {
		fields["from"] = "origin is required"
	}
	if strings.TrimSpace(t.To) == "" {
		fields["to"] = "destination is required"
	}
	if t.Price < 0 {
		fields["price"] = "price must not be negative"
	}
	if t.TotalSeats < 0 {
		fields["totalSeats"] = "seat count must not be negative"
	}
	if len(fields) > 0 {
		return &common.ValidationError{Fields: fields}
	}
	return nil
}

func (s *Service) ticketIndex(id string) int {
	return slices.IndexFunc(s.tickets, func(t Ticket) bool { return t.ID == id })
}
