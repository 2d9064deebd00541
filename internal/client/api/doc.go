// Package api talks to the remote admin API over HTTP/JSON.
//
// HTTPClient covers the two unauthenticated collaborators used by the
// session: the login endpoint and the token verification endpoint.
// AuthClient is the authenticated client used by every protected screen.
// It attaches the stored bearer token and a request id to each call, and
// turns a 401 into a session-expired signal.
//
// Non-2xx answers map to the error taxonomy in internal/common:
// AuthenticationError for login, SessionExpiredError and APIError for
// protected calls, NetworkError for transport failures.
package api
