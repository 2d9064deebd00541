package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
	"github.com/google/uuid"
)

// AuthClient performs protected calls. Every request carries the current
// token as a bearer credential and a fresh X-Request-ID.
type AuthClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource

	mu        sync.RWMutex
	onExpired func(ctx context.Context)
}

func NewAuthClient(baseURL string, hc *http.Client, tokens TokenSource) *AuthClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &AuthClient{baseURL: baseURL, http: hc, tokens: tokens}
}

// OnSessionExpired registers the hook run when a protected call gets a 401.
// The hook is expected to log out and send the user to the login screen.
func (c *AuthClient) OnSessionExpired(fn func(ctx context.Context)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onExpired = fn
}

func (c *AuthClient) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

func (c *AuthClient) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

func (c *AuthClient) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPut, path, body)
}

func (c *AuthClient) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil)
	return err
}

// Do sends one request and returns the raw 2xx body.
//
// Errors:
//   - *common.NetworkError on transport failure
//   - *common.SessionExpiredError on 401, after the expiry hook has run
//   - *common.APIError for any other non-2xx answer
func (c *AuthClient) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, joinURL(c.baseURL, path), reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, common.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.mu.RLock()
		hook := c.onExpired
		c.mu.RUnlock()
		if hook != nil {
			hook(ctx)
		}
		return nil, &common.SessionExpiredError{}
	}

	if !isSuccess(resp.StatusCode) {
		msg := serverMessage(decodeObject(resp.Body), "message")
		if msg == "" {
			msg = fmt.Sprintf("API request failed with status: %d", resp.StatusCode)
		}
		return nil, &common.APIError{Status: resp.StatusCode, Message: msg}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.NewNetworkError(err)
	}
	return raw, nil
}
