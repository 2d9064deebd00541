package services

import (
	"fmt"
	"time"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/client/config"
	"github.com/golang-jwt/jwt/v5"
)

// TokenChecker decides whether a stored token counts as a session.
type TokenChecker interface {
	Valid(token string) bool
}

// PresenceChecker accepts any non-empty token.
type PresenceChecker struct{}

func (PresenceChecker) Valid(token string) bool {
	return token != ""
}

// ExpiryChecker also rejects a JWT whose exp claim has passed. The
// signature is not checked: the console holds no key, and the server
// rejects forged tokens anyway. Tokens that do not parse as JWTs are
// treated as opaque and accepted when present.
type ExpiryChecker struct {
	Now func() time.Time
}

func (c ExpiryChecker) Valid(token string) bool {
	if token == "" {
		return false
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return now().Before(claims.ExpiresAt.Time)
}

// NewTokenChecker maps a config value to a checker.
func NewTokenChecker(kind string) (TokenChecker, error) {
	switch kind {
	case "", config.TokenCheckPresence:
		return PresenceChecker{}, nil
	case config.TokenCheckExpiry:
		return ExpiryChecker{}, nil
	default:
		return nil, fmt.Errorf("unknown token check %q", kind)
	}
}
