// Package tokenstore persists the session credential and the user record
// across console restarts. Exactly two entries are kept: the raw token
// under "authToken" and the JSON user record under "user".
package tokenstore

import (
	"context"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/models"
)

// Store is the Token Store. An absent token reads as "" and an absent user
// as nil; neither is an error.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	User(ctx context.Context) (models.User, error)
	SetUser(ctx context.Context, user models.User) error

	// Save writes both entries atomically.
	Save(ctx context.Context, token string, user models.User) error
	// Clear removes both entries atomically.
	Clear(ctx context.Context) error
}
