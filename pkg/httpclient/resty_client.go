package httpclient

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config tunes the resty transport shared by a single API client.
type Config struct {
	Timeout   time.Duration
	UserAgent string
}

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a RestyClient from cfg.
func NewRestyClient(cfg Config) *RestyClient {
	c := newRestyBaseClient(cfg.Timeout)
	if ua := strings.TrimSpace(cfg.UserAgent); ua != "" {
		c.SetHeader("User-Agent", ua)
	}
	return &RestyClient{client: c}
}

// NewRestyHTTPClient exposes a configured resty.Client for callers needing custom verbs.
func NewRestyHTTPClient(timeout time.Duration) *resty.Client {
	return newRestyBaseClient(timeout)
}

func newRestyBaseClient(timeout time.Duration) *resty.Client {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}

// Get performs an HTTP GET request. Query values are escaped by resty.
func (r *RestyClient) Get(ctx context.Context, url string, opts RequestOptions) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if len(opts.Query) > 0 {
		req.SetQueryParams(opts.Query)
	}
	if len(opts.Headers) > 0 {
		req.SetHeaders(opts.Headers)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
