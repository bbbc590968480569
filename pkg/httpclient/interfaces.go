package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// RequestOptions carries the per-request query parameters and headers.
type RequestOptions struct {
	Query   map[string]string
	Headers map[string]string
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	Get(ctx context.Context, url string, opts RequestOptions) (Response, error)
}
