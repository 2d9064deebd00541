package tokenstore

import (
	"context"
	"testing"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/models"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/repositories/metadata"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/storage"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), storage.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db, logging.Discard())
}

func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"sqlite": newSQLiteStore(t),
		"memory": NewMemoryStore(),
	}
}

func TestStore_EmptyReadsAsAbsent(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			tok, err := s.Token(ctx)
			require.NoError(t, err)
			assert.Empty(t, tok)

			u, err := s.User(ctx)
			require.NoError(t, err)
			assert.Nil(t, u)
		})
	}
}

func TestStore_SaveThenRead(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			user := models.User{"username": "admin", "name": "Admin", "role": "admin"}

			require.NoError(t, s.Save(ctx, "tok-1", user))

			tok, err := s.Token(ctx)
			require.NoError(t, err)
			assert.Equal(t, "tok-1", tok)

			got, err := s.User(ctx)
			require.NoError(t, err)
			assert.Equal(t, user, got)
		})
	}
}

func TestStore_SettersOverwrite(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.SetToken(ctx, "a"))
			require.NoError(t, s.SetToken(ctx, "b"))
			require.NoError(t, s.SetUser(ctx, models.User{"name": "x"}))

			tok, _ := s.Token(ctx)
			u, _ := s.User(ctx)
			assert.Equal(t, "b", tok)
			assert.Equal(t, "x", u.Name())
		})
	}
}

func TestStore_ClearRemovesBoth(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Save(ctx, "tok", models.User{"name": "n"}))

			require.NoError(t, s.Clear(ctx))
			require.NoError(t, s.Clear(ctx))

			tok, _ := s.Token(ctx)
			u, _ := s.User(ctx)
			assert.Empty(t, tok)
			assert.Nil(t, u)
		})
	}
}

func TestSQLiteStore_KeepsOnlyWellKnownKeys(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "tok", models.User{"name": "n"}))

	all, err := metadata.NewSQLiteRepository(s.db).List(ctx)
	require.NoError(t, err)

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"authToken", "user"}, keys)
}

func TestSQLiteStore_CorruptUserReadsAsAbsent(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()
	require.NoError(t, s.SetToken(ctx, "tok"))
	require.NoError(t, s.repo.Set(ctx, "user", []byte("{not json")))

	u, err := s.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	user := models.User{"name": "a"}
	require.NoError(t, s.SetUser(ctx, user))

	user["name"] = "mutated"
	got, _ := s.User(ctx)
	got["name"] = "also mutated"

	again, _ := s.User(ctx)
	assert.Equal(t, "a", again.Name())
}
