package login

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/guard"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/models"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/router"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/state"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSession mimics the session service over an in-memory token.
type fakeSession struct {
	token string
	user  models.User

	LoginRet   *models.LoginResult
	LoginErr   error
	LoginDelay time.Duration

	LoginCalls int
	LastCreds  models.Credentials
}

func (f *fakeSession) Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error) {
	f.LoginCalls++
	f.LastCreds = creds
	if f.LoginDelay > 0 {
		select {
		case <-time.After(f.LoginDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	f.token, f.user = f.LoginRet.Token, f.LoginRet.User
	return f.LoginRet, nil
}

func (f *fakeSession) IsAuthenticated(context.Context) bool { return f.token != "" }
func (f *fakeSession) User(context.Context) models.User     { return f.user }

type harness struct {
	session *fakeSession
	store   *state.Store
	router  *router.Router
	flow    *Flow
}

func newHarness(t *testing.T, s *fakeSession) *harness {
	t.Helper()
	st := state.NewStore(state.Initial())
	r := router.New(router.DefaultRoutes(), guard.New(st, s))
	return &harness{
		session: s,
		store:   st,
		router:  r,
		flow:    NewFlow(s, st, r, time.Second, logging.Discard()),
	}
}

func TestValidate_FieldMessages(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		secret     string
		want       map[string]string
	}{
		{name: "both empty", want: map[string]string{"username": "Email or Phone is required", "password": "Password is required"}},
		{name: "whitespace identifier", identifier: "   ", secret: "pw", want: map[string]string{"username": "Email or Phone is required"}},
		{name: "missing password", identifier: "admin", want: map[string]string{"password": "Password is required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, &fakeSession{})
			h.flow.Identifier, h.flow.Secret = tt.identifier, tt.secret

			err := h.flow.Submit(context.Background())

			var vErr *common.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.want, vErr.Fields)
			for field, msg := range tt.want {
				assert.Equal(t, msg, h.flow.FieldError(field))
			}
			assert.Zero(t, h.session.LoginCalls, "validation failures never reach the network")
			assert.Equal(t, Idle, h.flow.Phase())
			assert.Empty(t, h.store.Auth().Error, "validation is not a global error")
		})
	}
}

func TestSubmit_WrongPassword_KeepsFieldsAndSetsBanner(t *testing.T) {
	h := newHarness(t, &fakeSession{LoginErr: &common.AuthenticationError{Status: 401, Message: "Invalid username or password"}})
	ctx := context.Background()
	_, err := h.router.Navigate(ctx, common.LoginPath)
	require.NoError(t, err)

	h.flow.Identifier, h.flow.Secret = "admin", "wrong"
	err = h.flow.Submit(ctx)

	require.Error(t, err)
	auth := h.store.Auth()
	assert.False(t, auth.IsAuthenticated)
	assert.False(t, auth.Loading)
	assert.Equal(t, "Invalid username or password", auth.Error)
	assert.Equal(t, "Invalid username or password", h.flow.Banner())
	assert.Equal(t, "admin", h.flow.Identifier)
	assert.Equal(t, "wrong", h.flow.Secret)
	assert.Equal(t, Failure, h.flow.Phase())
	assert.Equal(t, common.LoginPath, h.router.Current().Path)
}

func TestSubmit_NetworkAndTimeoutMessages(t *testing.T) {
	t.Run("network", func(t *testing.T) {
		h := newHarness(t, &fakeSession{LoginErr: common.NewNetworkError(errors.New("refused"))})
		h.flow.Identifier, h.flow.Secret = "a", "b"

		_ = h.flow.Submit(context.Background())
		assert.Equal(t, "Network error. Please check your connection.", h.store.Auth().Error)
	})

	t.Run("timeout", func(t *testing.T) {
		h := newHarness(t, &fakeSession{LoginDelay: time.Second, LoginRet: &models.LoginResult{Token: "t", User: models.User{}}})
		h.flow.timeout = 20 * time.Millisecond
		h.flow.Identifier, h.flow.Secret = "a", "b"

		err := h.flow.Submit(context.Background())

		var netErr *common.NetworkError
		require.ErrorAs(t, err, &netErr)
		assert.True(t, netErr.Timeout)
		assert.Equal(t, "Request timed out. Please try again.", h.store.Auth().Error)
		assert.False(t, h.store.Auth().Loading)
	})

	t.Run("unexpected error", func(t *testing.T) {
		h := newHarness(t, &fakeSession{LoginErr: errors.New("weird")})
		h.flow.Identifier, h.flow.Secret = "a", "b"

		_ = h.flow.Submit(context.Background())
		assert.Equal(t, "Login failed. Please try again.", h.store.Auth().Error)
	})
}

func TestSubmit_Success_RedirectsBackToFrom(t *testing.T) {
	admin := models.User{"name": "Admin"}
	h := newHarness(t, &fakeSession{LoginRet: &models.LoginResult{Token: "tok", User: admin}})
	ctx := context.Background()

	out, err := h.router.Navigate(ctx, "/admin/tickets")
	require.NoError(t, err)
	require.True(t, out.Redirected)

	redirected, err := h.flow.Mount(ctx, out.Location.From)
	require.NoError(t, err)
	require.False(t, redirected)

	h.flow.Identifier, h.flow.Secret = " admin ", "admin"
	require.NoError(t, h.flow.Submit(ctx))

	assert.Equal(t, "admin", h.session.LastCreds.Identifier)
	assert.Equal(t, Success, h.flow.Phase())
	assert.True(t, h.store.Auth().IsAuthenticated)
	assert.Equal(t, admin, h.store.Auth().User)
	assert.Equal(t, "/admin/tickets", h.router.Current().Path)
	assert.Equal(t, 2, h.router.Depth(), "login entry replaced, not pushed")
}

func TestSubmit_Success_DefaultsToDashboard(t *testing.T) {
	h := newHarness(t, &fakeSession{LoginRet: &models.LoginResult{Token: "tok", User: models.User{}}})
	ctx := context.Background()

	_, err := h.flow.Mount(ctx, "")
	require.NoError(t, err)
	h.flow.Identifier, h.flow.Secret = "a", "b"
	require.NoError(t, h.flow.Submit(ctx))

	assert.Equal(t, common.LandingPath, h.router.Current().Path)
}

func TestMount_AlreadyAuthenticatedRedirects(t *testing.T) {
	s := &fakeSession{token: "tok", user: models.User{"name": "Stored"}}
	h := newHarness(t, s)
	ctx := context.Background()

	redirected, err := h.flow.Mount(ctx, "/admin/users")
	require.NoError(t, err)
	assert.True(t, redirected)
	assert.True(t, h.store.Auth().IsAuthenticated, "state reconciled from token store")
	assert.Equal(t, "Stored", h.store.Auth().User.Name())
	assert.Equal(t, "/admin/users", h.router.Current().Path)
	assert.Zero(t, s.LoginCalls)
}

func TestMount_TokenWithoutUserStillReconciles(t *testing.T) {
	h := newHarness(t, &fakeSession{token: "tok"})

	redirected, err := h.flow.Mount(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, redirected)
	assert.True(t, h.store.Auth().IsAuthenticated)
	assert.NotNil(t, h.store.Auth().User)
	assert.Equal(t, common.LandingPath, h.router.Current().Path)
}

func TestMount_StateWithoutTokenLogsOut(t *testing.T) {
	h := newHarness(t, &fakeSession{})
	h.store.Dispatch(state.LoginSuccess{User: models.User{"name": "ghost"}})

	redirected, err := h.flow.Mount(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, redirected)
	assert.False(t, h.store.Auth().IsAuthenticated)
}

func TestDismissError(t *testing.T) {
	h := newHarness(t, &fakeSession{LoginErr: &common.AuthenticationError{Message: "nope"}})
	ctx := context.Background()
	h.flow.Identifier, h.flow.Secret = "a", "b"
	_ = h.flow.Submit(ctx)

	h.flow.DismissError()
	assert.Empty(t, h.flow.Banner())
	assert.Equal(t, "nope", h.store.Auth().Error)

	// the next attempt shows its own failure again
	_ = h.flow.Submit(ctx)
	assert.Equal(t, "nope", h.flow.Banner())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "submitting", Submitting.String())
}
