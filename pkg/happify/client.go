// Package happify is a thin HTTP client for the Happify document-store REST
// API (moods, journal, trend, streak, and the optional server-side analytics
// endpoints). It carries the caller's session cookie through the request
// context so repository code stays session-agnostic.
package happify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// sessionKey carries the session cookie value through contexts.
type sessionKey struct{}

// WithSession attaches a session cookie value to the context. Requests made
// with that context send it as the store's session cookie.
func WithSession(ctx context.Context, session string) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext extracts the session cookie value, if any.
func SessionFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(sessionKey{}).(string)
	return s, ok && s != ""
}

// SessionCookieName is the cookie the store uses for authenticated requests.
const SessionCookieName = "happify_session"

// Client talks to the Happify store API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the store at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Get performs a GET against path with optional query parameters and decodes
// the JSON response into out. Non-2xx responses are returned as errors with
// the status and a truncated body.
func (c *Client) Get(ctx context.Context, path string, query map[string]string, out interface{}) error {
	body, err := c.do(ctx, http.MethodGet, path, query)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// GetRaw performs a GET and returns the raw response body. Used by callers
// that need to tolerate payload-shape drift themselves.
func (c *Client) GetRaw(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query)
}

func (c *Client) do(ctx context.Context, method, path string, query map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building %s %s request: %w", method, path, err)
	}

	if len(query) > 0 {
		q := url.Values{}
		for key, value := range query {
			q.Set(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set("Accept", "application/json")
	if session, ok := SessionFromContext(ctx); ok {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: session})
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("store error: %s %s returned %d: %s", method, path, resp.StatusCode, truncate(body, 200))
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
