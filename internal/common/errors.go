package common

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Stub API service errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")

	// Session errors.
	ErrNoToken = errors.New("no authentication token found")

	// Navigation errors.
	ErrRouteNotFound = errors.New("route not found")
)

// User-facing messages.
const (
	MsgNetworkError   = "Network error. Please check your connection."
	MsgTimeoutError   = "Request timed out. Please try again."
	MsgSessionExpired = "Authentication expired. Please login again."
	MsgLoginFailed    = "Login failed. Please try again."
)

// ValidationError is a local, pre-network failure scoped to named fields.
// It never reaches the network and is never surfaced as a global error.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns the message for the given field, or "".
func (e *ValidationError) Field(name string) string {
	return e.Fields[name]
}

// AuthenticationError is a non-2xx answer from the authentication endpoint.
type AuthenticationError struct {
	Status  int
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// NetworkError is a transport failure or a timeout. It is kept apart from
// AuthenticationError so a connectivity problem never reads as "wrong password".
type NetworkError struct {
	Message string
	Timeout bool
	Err     error
}

// NewNetworkError wraps a transport failure with the generic retry message.
func NewNetworkError(err error) *NetworkError {
	return &NetworkError{Message: MsgNetworkError, Err: err}
}

// NewTimeoutError reports a request that lost the race against its timer.
func NewTimeoutError() *NetworkError {
	return &NetworkError{Message: MsgTimeoutError, Timeout: true}
}

func (e *NetworkError) Error() string {
	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// SessionExpiredError is returned by the authenticated client on a 401 from
// a protected endpoint. It forces logout and redirect, never a banner.
type SessionExpiredError struct{}

func (e *SessionExpiredError) Error() string {
	return MsgSessionExpired
}

// APIError is a non-2xx, non-401 answer from a protected endpoint.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// DisplayMessage returns the text the UI shows for err. Unknown errors
// collapse into fallback.
func DisplayMessage(err error, fallback string) string {
	var (
		authErr *AuthenticationError
		netErr  *NetworkError
		apiErr  *APIError
	)
	switch {
	case errors.As(err, &authErr) && authErr.Message != "":
		return authErr.Message
	case errors.As(err, &netErr):
		return netErr.Message
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	case errors.As(err, new(*SessionExpiredError)):
		return MsgSessionExpired
	}
	return fallback
}
