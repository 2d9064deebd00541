package state

import (
	"context"
	"sync"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/models"
)

// Store is the injected state container. It is safe for concurrent use;
// subscribers run synchronously, in dispatch order, outside the state lock.
// A subscriber must not call Dispatch.
type Store struct {
	mu    sync.Mutex
	state State
	subs  map[int]func(State)
	next  int

	// notify serializes subscriber calls so they observe dispatch order.
	notify sync.Mutex
}

func NewStore(initial State) *Store {
	return &Store{state: initial, subs: make(map[int]func(State))}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Auth() AuthState {
	return s.State().Auth
}

// Dispatch applies a and notifies subscribers with the new state.
func (s *Store) Dispatch(a Action) State {
	s.notify.Lock()
	defer s.notify.Unlock()

	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	subs := make([]func(State), 0, len(s.subs))
	for i := 0; i < s.next; i++ {
		if fn, ok := s.subs[i]; ok {
			subs = append(subs, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// SessionReader is the part of the session service Bootstrap reads.
type SessionReader interface {
	Token(ctx context.Context) string
	User(ctx context.Context) models.User
}

// Bootstrap builds the initial state from the Token Store. The auth slice
// starts authenticated only when both a token and a user record exist.
func Bootstrap(ctx context.Context, session SessionReader) State {
	s := Initial()
	if session.Token(ctx) == "" {
		return s
	}
	if user := session.User(ctx); user != nil {
		s.Auth = AuthState{IsAuthenticated: true, User: user}
	}
	return s
}
