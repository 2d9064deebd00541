package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/models"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequester struct {
	GetRet  map[string]string
	GetErr  error
	PostRet string
	DelErr  error
	Delay   time.Duration

	LastGet    string
	LastPost   string
	LastPut    string
	LastBody   any
	LastDelete string
}

func (f *fakeRequester) Get(ctx context.Context, path string) (json.RawMessage, error) {
	f.LastGet = path
	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return json.RawMessage(f.GetRet[path]), f.GetErr
}

func (f *fakeRequester) Post(_ context.Context, path string, body any) (json.RawMessage, error) {
	f.LastPost = path
	f.LastBody = body
	return json.RawMessage(f.PostRet), nil
}

func (f *fakeRequester) Put(_ context.Context, path string, body any) (json.RawMessage, error) {
	f.LastPut = path
	f.LastBody = body
	return json.RawMessage(f.PostRet), nil
}

func (f *fakeRequester) Delete(_ context.Context, path string) error {
	f.LastDelete = path
	return f.DelErr
}

func TestCatalog_Tickets(t *testing.T) {
	f := &fakeRequester{GetRet: map[string]string{
		"/admin/getAllTicket": `{"data":{"tickets":[{"_id":"t1","from":"Kathmandu","to":"Pokhara","price":1200}]}}`,
	}}
	s := NewCatalogService(f, time.Second)

	got, err := s.Tickets(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, "Kathmandu → Pokhara", got[0].Route())
	assert.Equal(t, float64(1200), got[0].Price)
}

func TestCatalog_ItemPathsAreEscaped(t *testing.T) {
	f := &fakeRequester{GetRet: map[string]string{"/admin/users/a%2Fb": `{"data":{"_id":"a/b","name":"Ram"}}`}}
	s := NewCatalogService(f, time.Second)

	u, err := s.User(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "Ram", u.Name())

	require.NoError(t, s.DeleteTicket(context.Background(), "t 1"))
	assert.Equal(t, "/admin/tickets/t%201", f.LastDelete)
}

func TestCatalog_Book(t *testing.T) {
	f := &fakeRequester{PostRet: `{"data":{"_id":"b1","seats":["A1","B2"],"amount":2400}}`}
	s := NewCatalogService(f, time.Second)

	b, err := s.Book(context.Background(), []string{"A1", "B2"}, 2400)
	require.NoError(t, err)
	assert.Equal(t, "/admin/bookings", f.LastPost)
	assert.Equal(t, map[string]any{"seats": []string{"A1", "B2"}, "amount": int64(2400)}, f.LastBody)
	assert.Equal(t, "b1", b.ID)
	assert.Equal(t, int64(2400), b.Amount)
}

func TestCatalog_TicketWrites(t *testing.T) {
	f := &fakeRequester{PostRet: `{"success":true,"data":{"_id":"t9","from":"Kathmandu","to":"Dharan"}}`}
	s := NewCatalogService(f, time.Second)
	ctx := context.Background()

	created, err := s.CreateTicket(ctx, models.Ticket{ID: "stale", From: "Kathmandu", To: "Dharan"})
	require.NoError(t, err)
	assert.Equal(t, "/admin/tickets", f.LastPost)
	assert.Equal(t, models.Ticket{From: "Kathmandu", To: "Dharan"}, f.LastBody)
	assert.Equal(t, "t9", created.ID)

	updated, err := s.UpdateTicket(ctx, "t 9", models.Ticket{ID: "t9", From: "Kathmandu", To: "Dharan"})
	require.NoError(t, err)
	assert.Equal(t, "/admin/tickets/t%209", f.LastPut)
	assert.Empty(t, f.LastBody.(models.Ticket).ID)
	assert.Equal(t, "Dharan", updated.To)
}

func TestCatalog_UserWrites(t *testing.T) {
	f := &fakeRequester{PostRet: `{"success":true,"data":{"_id":"u9","username":"sita","name":"Sita Rai"}}`}
	s := NewCatalogService(f, time.Second)
	ctx := context.Background()

	form := models.UserForm{Username: "sita", Name: "Sita Rai", Password: "pw"}
	u, err := s.CreateUser(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, "/admin/users", f.LastPost)
	assert.Equal(t, form, f.LastBody)
	assert.Equal(t, "Sita Rai", u.Name())

	_, err = s.UpdateUser(ctx, "u9", form)
	require.NoError(t, err)
	assert.Equal(t, "/admin/users/u9", f.LastPut)
	assert.Equal(t, models.UserForm{Name: "Sita Rai"}, f.LastBody)

	require.NoError(t, s.DeleteUser(ctx, "u/9"))
	assert.Equal(t, "/admin/users/u%2F9", f.LastDelete)

	f.DelErr = &common.APIError{Status: 404, Message: "User not found"}
	err = s.DeleteUser(ctx, "u9")
	var apiErr *common.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "User not found", apiErr.Message)
}

func TestCatalog_SlowServerTimesOut(t *testing.T) {
	f := &fakeRequester{Delay: time.Second}
	s := NewCatalogService(f, 20*time.Millisecond)

	_, err := s.Bookings(context.Background())

	var netErr *common.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Timeout)
}

func TestCatalog_ErrorsPassThrough(t *testing.T) {
	f := &fakeRequester{GetErr: &common.SessionExpiredError{}}
	s := NewCatalogService(f, time.Second)

	_, err := s.Users(context.Background())
	require.ErrorAs(t, err, new(*common.SessionExpiredError))
}
