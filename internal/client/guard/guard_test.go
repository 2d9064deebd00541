package guard

import (
	"context"
	"testing"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/models"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/state"
	"github.com/stretchr/testify/assert"
)

func TestDecide_TruthTable(t *testing.T) {
	tests := []struct {
		loading, isAuth, token bool
		want                   Decision
	}{
		{false, false, false, Unauthorized},
		{false, false, true, Unauthorized},
		{false, true, false, Unauthorized},
		{false, true, true, Authorized},
		{true, false, false, Loading},
		{true, false, true, Loading},
		{true, true, false, Loading},
		{true, true, true, Loading},
	}

	for _, tt := range tests {
		got := Decide(tt.loading, tt.isAuth, tt.token)
		assert.Equal(t, tt.want, got, "loading=%v isAuth=%v token=%v", tt.loading, tt.isAuth, tt.token)
	}
}

type fakeTokens bool

func (f fakeTokens) IsAuthenticated(context.Context) bool { return bool(f) }

func TestGuard_ReadsBothSources(t *testing.T) {
	ctx := context.Background()
	st := state.NewStore(state.Initial())

	assert.Equal(t, Unauthorized, New(st, fakeTokens(true)).Check(ctx))

	st.Dispatch(state.LoginSuccess{User: models.User{"name": "a"}})
	assert.Equal(t, Authorized, New(st, fakeTokens(true)).Check(ctx))
	assert.Equal(t, Unauthorized, New(st, fakeTokens(false)).Check(ctx))

	st.Dispatch(state.LoginStart{})
	assert.Equal(t, Loading, New(st, fakeTokens(false)).Check(ctx))
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "authorized", Authorized.String())
	assert.Equal(t, "unauthorized", Unauthorized.String())
}
