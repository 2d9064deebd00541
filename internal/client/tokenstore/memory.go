package tokenstore

import (
	"context"
	"sync"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/models"
)

// MemoryStore is a process-local Store used by tests.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	user  models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Token(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *MemoryStore) SetToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) User(context.Context) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user.Clone(), nil
}

func (m *MemoryStore) SetUser(_ context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user.Clone()
	return nil
}

func (m *MemoryStore) Save(_ context.Context, token string, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.user = user.Clone()
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = nil
	return nil
}
