package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/server/config"
)

func newSeededService(t *testing.T) *Service {
	t.Helper()
	s := NewService(NewMemoryRepository(), &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour})
	require.NoError(t, s.Seed(context.Background()))
	return s
}

func TestService_Login(t *testing.T) {
	s := newSeededService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		login    string
		password string
		wantRole string
		wantErr  error
	}{
		{name: "admin by username", login: "admin", password: "admin", wantRole: "admin"},
		{name: "user by email", login: "USER@example.com", password: "user", wantRole: "user"},
		{name: "admin by phone", login: "9800000001", password: "admin", wantRole: "admin"},
		{name: "wrong password", login: "admin", password: "nope", wantErr: common.ErrUnauthorized},
		{name: "unknown user", login: "ghost", password: "admin", wantErr: common.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, user, err := s.Login(ctx, tt.login, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, user.Role)

			claims, err := s.Authenticate(token)
			require.NoError(t, err)
			assert.Equal(t, user.ID, claims.UserID)
			assert.Equal(t, tt.wantRole, claims.Role)
		})
	}
}

func TestService_PasswordIsHashed(t *testing.T) {
	s := newSeededService(t)

	u, err := s.repo.GetUserByLogin(context.Background(), "admin")
	require.NoError(t, err)
	assert.NotEqual(t, []byte("admin"), u.PasswordHash)
	assert.NotContains(t, u.Record(), "passwordHash")
	assert.Equal(t, u.ID, u.Record()["_id"])
}

func TestService_ListAndGet(t *testing.T) {
	s := newSeededService(t)
	ctx := context.Background()

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "admin", list[0].UserName)
	assert.Equal(t, "user", list[1].UserName)

	got, err := s.Get(ctx, list[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Test User", got.Name)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryRepository_CopiesOnReadAndWrite(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	in := &User{ID: "1", UserName: "a"}
	_, err := r.Create(ctx, in)
	require.NoError(t, err)
	in.UserName = "changed"

	got, err := r.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "a", got.UserName)

	got.UserName = "changed again"
	again, _ := r.Get(ctx, "1")
	assert.Equal(t, "a", again.UserName)

	_, err = r.Create(ctx, &User{ID: "1"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestService_CreateUser(t *testing.T) {
	s := newSeededService(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, " ram ", Profile{Name: "Ram Thapa", Email: "ram@example.com", Phone: "9811111111"}, "secret")
	require.NoError(t, err)
	assert.Equal(t, "ram", u.UserName)
	assert.Equal(t, "user", u.Role)

	token, _, err := s.Login(ctx, "9811111111", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	tests := []struct {
		name     string
		username string
		profile  Profile
		password string
		field    string
		wantErr  error
	}{
		{name: "missing name", username: "x", password: "p", field: "name"},
		{name: "missing username", profile: Profile{Name: "X"}, password: "p", field: "username"},
		{name: "missing password", username: "x", profile: Profile{Name: "X"}, field: "password"},
		{name: "bad email", username: "x", profile: Profile{Name: "X", Email: "nope"}, password: "p", field: "email"},
		{name: "bad role", username: "x", profile: Profile{Name: "X", Role: "root"}, password: "p", field: "role"},
		{name: "taken username", username: "ADMIN", profile: Profile{Name: "X"}, password: "p", wantErr: common.ErrAlreadyExists},
		{name: "taken email", username: "x", profile: Profile{Name: "X", Email: "user@example.com"}, password: "p", wantErr: common.ErrAlreadyExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateUser(ctx, tt.username, tt.profile, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			var vErr *common.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.NotEmpty(t, vErr.Field(tt.field))
		})
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestService_UpdateUser(t *testing.T) {
	s := newSeededService(t)
	ctx := context.Background()
	admin, err := s.repo.GetUserByLogin(ctx, "admin")
	require.NoError(t, err)

	u, err := s.UpdateUser(ctx, admin.ID, Profile{Name: "Root", Email: "admin@example.com", Phone: "9800000009"})
	require.NoError(t, err)
	assert.Equal(t, "Root", u.Name)
	assert.Equal(t, "admin", u.Role)
	assert.Equal(t, "admin", u.UserName)

	_, _, err = s.Login(ctx, "9800000009", "admin")
	assert.NoError(t, err)

	_, err = s.UpdateUser(ctx, admin.ID, Profile{Name: "Root", Email: "user@example.com"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	_, err = s.UpdateUser(ctx, "missing", Profile{Name: "X"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = s.UpdateUser(ctx, admin.ID, Profile{})
	require.ErrorAs(t, err, new(*common.ValidationError))
}

func TestService_DeleteUser(t *testing.T) {
	s := newSeededService(t)
	ctx := context.Background()
	admin, _ := s.repo.GetUserByLogin(ctx, "admin")
	user, _ := s.repo.GetUserByLogin(ctx, "user")

	err := s.DeleteUser(ctx, admin.ID, admin.ID)
	require.ErrorAs(t, err, new(*common.ValidationError))

	require.NoError(t, s.DeleteUser(ctx, user.ID, admin.ID))
	_, err = s.Get(ctx, user.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, s.DeleteUser(ctx, user.ID, admin.ID), common.ErrNotFound)
}
