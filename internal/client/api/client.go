package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Endpoint paths relative to the API base URL.
const (
	LoginPath       = "/admin/login"
	VerifyTokenPath = "/verify-token"
	TicketsPath     = "/admin/getAllTicket"
	TicketPath      = "/admin/tickets"
	UsersPath       = "/admin/getAllUsers"
	UserPath        = "/admin/users"
	BookingsPath    = "/admin/bookings"
	maxBodySize     = 64 << 10
)

// AuthAPI is the contract the session service needs from the backend.
type AuthAPI interface {
	// Login posts credentials and returns the raw response body of a 2xx
	// answer decoded as a JSON object.
	Login(ctx context.Context, username, password string) (LoginResponse, error)
	// VerifyToken asks the backend whether token is still accepted.
	VerifyToken(ctx context.Context, token string) (bool, error)
}

// TokenSource yields the current bearer token; "" means none.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// decodeObject reads a JSON object body. Empty or non-object bodies give
// an empty map.
func decodeObject(r io.Reader) map[string]any {
	b, err := io.ReadAll(io.LimitReader(r, maxBodySize))
	if err != nil || len(b) == 0 {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}

// serverMessage picks the human-readable reason out of an error body.
func serverMessage(body map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := body[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
