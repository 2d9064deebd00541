// Package common contains shared constants, the error taxonomy and small
// helpers used across the admin console and the stub API.
package common

// AuthorizationHeaderName carries the bearer token on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName tags every outbound API request with a unique id.
const RequestIDHeaderName = "X-Request-ID"

// Well-known Token Store keys. Nothing else is persisted.
const (
	TokenStorageKey = "authToken"
	UserStorageKey  = "user"
)

// Console locations shared by the router, the guard and the login flow.
const (
	LoginPath   = "/admin/login"
	LandingPath = "/admin/dashboard"
)

// Placeholder is shown for any user or record field that is absent.
const Placeholder = "N/A"
