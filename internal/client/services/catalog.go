package services

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/api"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/models"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/timeout"
)

// Requester is the slice of api.AuthClient the catalog needs.
type Requester interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string) error
}

// CatalogService reads and edits the admin data behind the protected
// screens. Every call races against the request timeout.
type CatalogService struct {
	client  Requester
	timeout time.Duration
}

func NewCatalogService(client Requester, requestTimeout time.Duration) *CatalogService {
	return &CatalogService{client: client, timeout: requestTimeout}
}

func (s *CatalogService) Tickets(ctx context.Context) ([]models.Ticket, error) {
	return getList[models.Ticket](ctx, s, api.TicketsPath)
}

func (s *CatalogService) Ticket(ctx context.Context, id string) (models.Ticket, error) {
	return getItem[models.Ticket](ctx, s, api.TicketPath+"/"+url.PathEscape(id))
}

func (s *CatalogService) CreateTicket(ctx context.Context, t models.Ticket) (models.Ticket, error) {
	t.ID = ""
	return send[models.Ticket](ctx, s, s.client.Post, api.TicketPath, t)
}

func (s *CatalogService) UpdateTicket(ctx context.Context, id string, t models.Ticket) (models.Ticket, error) {
	t.ID = ""
	return send[models.Ticket](ctx, s, s.client.Put, api.TicketPath+"/"+url.PathEscape(id), t)
}

func (s *CatalogService) DeleteTicket(ctx context.Context, id string) error {
	return s.remove(ctx, api.TicketPath+"/"+url.PathEscape(id))
}

func (s *CatalogService) Users(ctx context.Context) ([]models.User, error) {
	return getList[models.User](ctx, s, api.UsersPath)
}

func (s *CatalogService) User(ctx context.Context, id string) (models.User, error) {
	return getItem[models.User](ctx, s, api.UserPath+"/"+url.PathEscape(id))
}

func (s *CatalogService) CreateUser(ctx context.Context, f models.UserForm) (models.User, error) {
	return send[models.User](ctx, s, s.client.Post, api.UserPath, f)
}

// UpdateUser sends the profile fields of f. Username and password are
// never changed this way.
func (s *CatalogService) UpdateUser(ctx context.Context, id string, f models.UserForm) (models.User, error) {
	f.Username, f.Password = "", ""
	return send[models.User](ctx, s, s.client.Put, api.UserPath+"/"+url.PathEscape(id), f)
}

func (s *CatalogService) DeleteUser(ctx context.Context, id string) error {
	return s.remove(ctx, api.UserPath+"/"+url.PathEscape(id))
}

func (s *CatalogService) Bookings(ctx context.Context) ([]models.Booking, error) {
	return getList[models.Booking](ctx, s, api.BookingsPath)
}

// Book submits a seat reservation and returns the stored booking.
func (s *CatalogService) Book(ctx context.Context, seats []string, amount int64) (models.Booking, error) {
	return send[models.Booking](ctx, s, s.client.Post, api.BookingsPath, map[string]any{"seats": seats, "amount": amount})
}

func (s *CatalogService) remove(ctx context.Context, path string) error {
	_, err := timeout.Race(ctx, s.timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.Delete(ctx, path)
	})
	return err
}

type writeFunc func(ctx context.Context, path string, body any) (json.RawMessage, error)

// send posts or puts body and decodes the returned item.
func send[T any](ctx context.Context, s *CatalogService, write writeFunc, path string, body any) (T, error) {
	raw, err := timeout.Race(ctx, s.timeout, func(ctx context.Context) (json.RawMessage, error) {
		return write(ctx, path, body)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return api.DecodeItem[T](raw)
}

func getList[T any](ctx context.Context, s *CatalogService, path string) ([]T, error) {
	raw, err := timeout.Race(ctx, s.timeout, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.Get(ctx, path)
	})
	if err != nil {
		return nil, err
	}
	return api.DecodeList[T](raw)
}

func getItem[T any](ctx context.Context, s *CatalogService, path string) (T, error) {
	raw, err := timeout.Race(ctx, s.timeout, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.Get(ctx, path)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return api.DecodeItem[T](raw)
}
