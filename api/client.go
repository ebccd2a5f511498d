// Package api is the client for the MAPO REST backend. It is a thin JSON
// layer: it attaches the bearer token from the persisted session, translates
// non-2xx responses into structured errors carrying the backend's detail
// message, and invokes a global hook on 401 so the CLI can clear the session.
// All business logic (stock arithmetic, FIFO allocation, refund computation)
// is the backend's; this package only moves payloads.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MAPO-UPTC/mapo-cli/errors"
	"github.com/MAPO-UPTC/mapo-cli/logging"
	"github.com/sirupsen/logrus"
)

// TokenSource supplies the current bearer token, or "" when logged out.
type TokenSource func() string

// Client talks to the MAPO backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
	log        *logrus.Entry

	// onUnauthorized runs once per 401 response, before the error is
	// returned to the caller. Used to clear the persisted session.
	onUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout overrides the per-request timeout. Zero and negative values
// are ignored and the default stands.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithTokenSource sets where the bearer token is read from on each request.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

// WithUnauthorizedHook sets the side effect run on any 401 response.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		token: func() string { return "" },
		log:   logging.NewLogger("api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorBody is the backend's error envelope for non-2xx responses.
type errorBody struct {
	Detail string `json:"detail"`
}

// doJSON performs a round-trip and decodes the response body into out.
// Decoding is strict: an unexpected shape (e.g. a list endpoint returning an
// object) surfaces as an explicit DECODE_FAILED error rather than a silent
// empty result.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeInternal, "failed to encode request body")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.WithFields(logrus.Fields{"method": method, "path": path}).Debug("Sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.APIUnavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.WithField("path", path).Warn("Session rejected by backend")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return errors.Unauthorized()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		// A non-JSON error body is fine; the detail just stays empty.
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		c.log.WithFields(logrus.Fields{
			"path":   path,
			"status": resp.StatusCode,
			"detail": eb.Detail,
		}).Warn("Request failed")
		return errors.APIError(resp.StatusCode, eb.Detail)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.DecodeFailed(fmt.Sprintf("%s %s", method, path), err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, path, nil, body, out)
}
