// Package client drives the portal's registration and approval workflow over
// the HTTP API. Every call returns a Result; raw transport and decoding errors
// never escape the package.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"smartcity-portal/logger"
	"smartcity-portal/validation"

	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL = "https://api.smartcity-portal.ng"
	BaseURLEnv     = "SMARTCITY_API_URL"
	RequestTimeout = 30 * time.Second

	maxErrorBody = 1 << 20
)

const (
	msgTimeout     = "Request timed out"
	msgCancelled   = "Request was cancelled"
	msgUnreachable = "Could not reach the server. Please check your connection and try again."
	msgBadResponse = "Received an unexpected response from the server"
	msgNotLoggedIn = "Please log in as an administrator to continue"
	msgExpired     = "Your admin session has expired. Please log in again."
)

// BaseURLFromEnv returns SMARTCITY_API_URL, or DefaultBaseURL when unset.
func BaseURLFromEnv() string {
	if v := strings.TrimSpace(os.Getenv(BaseURLEnv)); v != "" {
		return strings.TrimRight(v, "/")
	}
	return DefaultBaseURL
}

// Client talks to the portal API and keeps its session in a SessionStore.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      SessionStore
}

type Option func(*Client)

// WithHTTPClient replaces the default client. Its timeout is forced to
// RequestTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		clone := *hc
		clone.Timeout = RequestTimeout
		c.httpClient = &clone
	}
}

// New creates a Client. An empty baseURL falls back to BaseURLFromEnv.
func New(baseURL string, store SessionStore, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = BaseURLFromEnv()
	}
	if store == nil {
		store = NewMemoryStore()
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: RequestTimeout},
		store:      store,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the session store shared with gates built on this client.
func (c *Client) Store() SessionStore {
	return c.store
}

// errorBody covers the shapes the API uses for failures. Error and Errors
// are decoded loosely since older deployments sent them as strings, bools,
// objects or field maps.
type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Errors  json.RawMessage `json:"errors"`
}

// fields returns the per-field errors when Errors is a list of them.
func (b errorBody) fields() []validation.FieldError {
	if len(b.Errors) == 0 {
		return nil
	}
	var out []validation.FieldError
	if err := json.Unmarshal(b.Errors, &out); err != nil {
		return nil
	}
	return out
}

func (b errorBody) text() string {
	if strings.TrimSpace(b.Message) != "" {
		return b.Message
	}
	var s string
	if len(b.Error) > 0 && json.Unmarshal(b.Error, &s) == nil && strings.TrimSpace(s) != "" {
		return s
	}
	return ""
}

// do sends a JSON request and decodes a 2xx body into out. Admin calls carry
// the stored admin token; a 401 or 403 on them ends the admin session.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, admin bool) *Error {
	log := logger.Log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
	})

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			log.WithError(err).Error("Failed to encode request body")
			return &Error{Kind: KindTransport, Message: msgBadResponse}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		log.WithError(err).Error("Failed to build request")
		return &Error{Kind: KindTransport, Message: msgUnreachable}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		token, ok := c.store.Get(KeyAdminToken)
		if !ok || token == "" {
			return &Error{Kind: KindUnauthenticated, Message: msgNotLoggedIn}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("API request failed")
		return transportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.WithError(err).Warn("Failed to decode API response")
			return &Error{Kind: KindTransport, Status: resp.StatusCode, Message: msgBadResponse}
		}
		return nil
	}

	apiErr := c.normalizeFailure(resp, admin)
	log.WithFields(logrus.Fields{
		"status": resp.StatusCode,
		"kind":   apiErr.Kind,
	}).Info("API request rejected")
	return apiErr
}

func (c *Client) normalizeFailure(resp *http.Response, admin bool) *Error {
	status := resp.StatusCode
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	if admin && (status == http.StatusUnauthorized || status == http.StatusForbidden) {
		if err := c.store.Clear(KeyAdminToken, KeyAdminData); err != nil {
			logger.Log.WithError(err).Warn("Failed to clear admin session")
		}
		return &Error{Kind: KindUnauthenticated, Status: status, Message: msgExpired}
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return &Error{Kind: KindServer, Status: status, Message: fmt.Sprintf("Server error (status %d)", status)}
	}

	kind := KindServer
	if status >= 400 && status < 500 {
		kind = KindRejected
	}
	msg := body.text()
	if msg == "" {
		if kind == KindRejected {
			msg = fmt.Sprintf("Request was rejected (status %d)", status)
		} else {
			msg = fmt.Sprintf("Server error (status %d)", status)
		}
	}
	return &Error{Kind: kind, Status: status, Message: msg, Fields: body.fields()}
}

func transportError(ctx context.Context, err error) *Error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return &Error{Kind: KindTransport, Message: msgTimeout}
	case errors.Is(ctx.Err(), context.Canceled):
		return &Error{Kind: KindTransport, Message: msgCancelled}
	default:
		return &Error{Kind: KindTransport, Message: msgUnreachable}
	}
}
