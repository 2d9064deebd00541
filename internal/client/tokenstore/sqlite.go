package tokenstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/models"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/repositories/metadata"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/dbx"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/logging"
)

type SQLiteStore struct {
	db   *sql.DB
	repo metadata.Repository
	log  logging.Logger
}

func NewSQLiteStore(db *sql.DB, log logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, repo: metadata.NewSQLiteRepository(db), log: log}
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, common.TokenStorageKey, []byte(token))
}

// User decodes the stored record. A record that is not valid JSON is
// logged and reported as absent so it cannot block startup.
func (s *SQLiteStore) User(ctx context.Context) (models.User, error) {
	v, err := s.repo.Get(ctx, common.UserStorageKey)
	if err != nil || len(v) == 0 {
		return nil, err
	}

	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		s.log.Warn(ctx, "discarding unreadable stored user", "error", err)
		return nil, nil
	}
	return u, nil
}

func (s *SQLiteStore) SetUser(ctx context.Context, user models.User) error {
	b, err := encodeUser(user)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, common.UserStorageKey, b)
}

func (s *SQLiteStore) Save(ctx context.Context, token string, user models.User) error {
	b, err := encodeUser(user)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.TokenStorageKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserStorageKey, b)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, common.TokenStorageKey, common.UserStorageKey)
	})
}

func encodeUser(user models.User) ([]byte, error) {
	if user == nil {
		user = models.User{}
	}
	b, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}
	return b, nil
}
