// Package kawaii is a client for the kawaii.red GIF API.
package kawaii

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kawaii-hq/kawaii-go/pkg/httpclient"
)

const (
	// DefaultBaseURL is the documented root of the gif endpoints.
	DefaultBaseURL = "https://kawaii.red/api/gif/"
	// AnonymousToken grants unauthenticated access.
	AnonymousToken = "anonymous"
	DefaultTimeout = 15 * time.Second
)

// Client fetches random GIF URLs. It holds no mutable state and is safe for
// concurrent use.
type Client struct {
	baseURL   string
	token     string
	timeout   time.Duration
	userAgent string
	http      httpclient.Client
	log       Logger
}

// New builds a Client. Without options it uses the anonymous token and the
// public API root. No network activity happens here.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   AnonymousToken,
		timeout: DefaultTimeout,
		log:     noopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(httpclient.Config{
			Timeout:   c.timeout,
			UserAgent: c.userAgent,
		})
	}
	return c
}

func (c *Client) Token() string   { return c.token }
func (c *Client) BaseURL() string { return c.baseURL }

// RandomGif returns the URL of a random GIF from category.
//
// Failures are one of *TransportError, *AuthenticationError or
// *MalformedResponseError; an unknown category yields ErrUnknownCategory
// without touching the network.
func (c *Client) RandomGif(ctx context.Context, category Category) (string, error) {
	if !category.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, string(category))
	}
	if ctx == nil {
		ctx = context.Background()
	}

	endpoint := c.endpoint(category)
	c.log.DebugObj("kawaii request", "kawaii_request", map[string]any{
		"category": category.String(),
		"endpoint": endpoint,
	})

	resp, err := c.http.Get(ctx, endpoint, httpclient.RequestOptions{
		Query:   map[string]string{"token": c.token},
		Headers: map[string]string{"Accept": "application/json"},
	})
	if err != nil {
		c.log.WarnObj("kawaii request failed", "kawaii_error", map[string]any{
			"category": category.String(),
			"error":    err.Error(),
		})
		return "", &TransportError{Err: err}
	}

	if code := resp.StatusCode(); code < http.StatusOK || code >= http.StatusMultipleChoices {
		c.log.WarnObj("kawaii non-success status", "kawaii_error", map[string]any{
			"category":    category.String(),
			"status_code": code,
		})
		return "", &TransportError{StatusCode: code}
	}

	gifURL, err := decodeEnvelope(resp.Body())
	if err != nil {
		c.log.WarnObj("kawaii response rejected", "kawaii_error", map[string]any{
			"category": category.String(),
			"error":    err.Error(),
		})
		return "", err
	}
	return gifURL, nil
}

func (c *Client) endpoint(category Category) string {
	return strings.TrimRight(c.baseURL, "/") + "/" + category.String()
}
