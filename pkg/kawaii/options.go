package kawaii

import (
	"strings"
	"time"

	"github.com/kawaii-hq/kawaii-go/pkg/httpclient"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithToken sets the access token. Blank tokens fall back to AnonymousToken.
func WithToken(token string) Option {
	return func(c *Client) {
		if t := strings.TrimSpace(token); t != "" {
			c.token = t
		}
	}
}

// WithBaseURL points the client at a different API root, e.g. a mock server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if u := strings.TrimSpace(baseURL); u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient injects the transport. Timeout and user agent options are
// ignored when a transport is supplied.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request made by the default transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = strings.TrimSpace(ua) }
}

func WithLogger(log Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}
