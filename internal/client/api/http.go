package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
)

// LoginResponse is the decoded body of a successful login.
type LoginResponse map[string]any

// Token returns the session credential: "token", falling back to
// "accessToken".
func (r LoginResponse) Token() string {
	return serverMessage(r, "token", "accessToken")
}

// User returns the "user" object, or nil when the server sent none.
func (r LoginResponse) User() map[string]any {
	u, _ := r["user"].(map[string]any)
	return u
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{baseURL: baseURL, http: hc}
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	payload, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinURL(c.baseURL, LoginPath), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, common.NewNetworkError(err)
	}
	defer resp.Body.Close()

	body := decodeObject(resp.Body)
	if !isSuccess(resp.StatusCode) {
		msg := serverMessage(body, "message", "error")
		if msg == "" {
			msg = fmt.Sprintf("login failed with status: %d", resp.StatusCode)
		}
		return nil, &common.AuthenticationError{Status: resp.StatusCode, Message: msg}
	}

	return LoginResponse(body), nil
}

// VerifyToken reports true only for a 2xx answer whose body does not carry
// "valid": false or "success": false. A transport failure is returned as
// an error so callers can log it; the result is false either way.
func (c *HTTPClient) VerifyToken(ctx context.Context, token string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, joinURL(c.baseURL, VerifyTokenPath), nil)
	if err != nil {
		return false, err
	}
	req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, common.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return false, nil
	}

	body := decodeObject(resp.Body)
	for _, k := range []string{"valid", "success"} {
		if v, ok := body[k].(bool); ok && !v {
			return false, nil
		}
	}
	return true, nil
}
