// Package guard decides whether a protected console location may be shown.
package guard

import (
	"context"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/state"
)

type Decision int

const (
	// Loading means a login is in flight: show progress, do not navigate.
	Loading Decision = iota
	// Authorized means the protected content may be shown.
	Authorized
	// Unauthorized means redirect to the login location.
	Unauthorized
)

func (d Decision) String() string {
	switch d {
	case Loading:
		return "loading"
	case Authorized:
		return "authorized"
	default:
		return "unauthorized"
	}
}

// Decide is the guard policy. The state flag and the stored token are two
// independent sources and both must agree; loading wins over either.
func Decide(loading, isAuthenticated, tokenPresent bool) Decision {
	switch {
	case loading:
		return Loading
	case isAuthenticated && tokenPresent:
		return Authorized
	default:
		return Unauthorized
	}
}

type StateReader interface {
	Auth() state.AuthState
}

// TokenReader reports whether the Token Store currently holds a session.
type TokenReader interface {
	IsAuthenticated(ctx context.Context) bool
}

// Guard reads both sources on every check.
type Guard struct {
	store  StateReader
	tokens TokenReader
}

func New(store StateReader, tokens TokenReader) *Guard {
	return &Guard{store: store, tokens: tokens}
}

func (g *Guard) Check(ctx context.Context) Decision {
	auth := g.store.Auth()
	return Decide(auth.Loading, auth.IsAuthenticated, g.tokens.IsAuthenticated(ctx))
}
