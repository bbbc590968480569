package kawaii

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kawaii-hq/kawaii-go/pkg/httpclient"
)

type recordedRequest struct {
	path  string
	token string
}

func newGifServer(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var seen []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, recordedRequest{path: r.URL.Path, token: r.URL.Query().Get("token")})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestRandomGifReturnsResponseURL(t *testing.T) {
	srv, seen := newGifServer(t, http.StatusOK, `{"response":"http://x/1.gif"}`)

	client := New(WithBaseURL(srv.URL + "/api/gif/"))
	got, err := client.RandomGif(context.Background(), CategoryHug)
	if err != nil {
		t.Fatalf("RandomGif returned error: %v", err)
	}
	if got != "http://x/1.gif" {
		t.Fatalf("expected http://x/1.gif, got %q", got)
	}
	if len(*seen) != 1 {
		t.Fatalf("expected 1 request, got %d", len(*seen))
	}
	if (*seen)[0].path != "/api/gif/hug" {
		t.Fatalf("unexpected request path %q", (*seen)[0].path)
	}
}

func TestRandomGifDefaultsToAnonymousToken(t *testing.T) {
	srv, seen := newGifServer(t, http.StatusOK, `{"response":"https://kawaii.red/gif/wave/1.gif"}`)

	client := New(WithBaseURL(srv.URL), WithToken("   "))
	if client.Token() != AnonymousToken {
		t.Fatalf("expected blank token to fall back to %q, got %q", AnonymousToken, client.Token())
	}
	if _, err := client.RandomGif(context.Background(), CategoryWave); err != nil {
		t.Fatalf("RandomGif returned error: %v", err)
	}
	if got := (*seen)[0].token; got != "anonymous" {
		t.Fatalf("expected token=anonymous, got %q", got)
	}
	if got := (*seen)[0].path; got != "/wave" {
		t.Fatalf("base url without trailing slash should still join cleanly, got %q", got)
	}
}

func TestRandomGifSendsCustomToken(t *testing.T) {
	srv, seen := newGifServer(t, http.StatusOK, `{"response":"https://x/kiss.gif"}`)

	client := New(WithBaseURL(srv.URL+"/"), WithToken("s3cr3t+token"))
	if _, err := client.RandomGif(context.Background(), CategoryKiss); err != nil {
		t.Fatalf("RandomGif returned error: %v", err)
	}
	if got := (*seen)[0].token; got != "s3cr3t+token" {
		t.Fatalf("expected token to round-trip, got %q", got)
	}
}

func TestRandomGifAuthenticationError(t *testing.T) {
	for _, msg := range []string{
		"Invalid authentication token!",
		"Invalid authentication token! Please retry.",
	} {
		t.Run(msg, func(t *testing.T) {
			srv, _ := newGifServer(t, http.StatusOK, `{"error":"`+msg+`"}`)

			client := New(WithBaseURL(srv.URL), WithToken("bad"))
			got, err := client.RandomGif(context.Background(), CategoryHug)
			if got != "" {
				t.Fatalf("expected no url on failure, got %q", got)
			}
			var authErr *AuthenticationError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected AuthenticationError, got %T: %v", err, err)
			}
			if authErr.Message != msg {
				t.Fatalf("expected message %q, got %q", msg, authErr.Message)
			}
			if !errors.Is(err, ErrAuthentication) {
				t.Fatalf("expected errors.Is(err, ErrAuthentication)")
			}
		})
	}
}

func TestRandomGifOtherProviderErrorIsMalformed(t *testing.T) {
	srv, _ := newGifServer(t, http.StatusOK, `{"error":"Some other problem"}`)

	_, err := New(WithBaseURL(srv.URL)).RandomGif(context.Background(), CategoryPat)
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %T: %v", err, err)
	}
	if malformed.RemoteMessage != "Some other problem" {
		t.Fatalf("expected remote message to be kept, got %q", malformed.RemoteMessage)
	}
	if errors.Is(err, ErrAuthentication) {
		t.Fatalf("unrelated provider error must not be an authentication error")
	}
}

func TestRandomGifNonSuccessStatusSkipsBody(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		srv, _ := newGifServer(t, status, `{"response":"http://x/should-not-be-used.gif"}`)

		got, err := New(WithBaseURL(srv.URL)).RandomGif(context.Background(), CategoryHug)
		if got != "" {
			t.Fatalf("status %d: expected no url, got %q", status, got)
		}
		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			t.Fatalf("status %d: expected TransportError, got %T: %v", status, err, err)
		}
		if transportErr.StatusCode != status {
			t.Fatalf("expected status %d, got %d", status, transportErr.StatusCode)
		}
		if !errors.Is(err, ErrTransport) {
			t.Fatalf("expected errors.Is(err, ErrTransport)")
		}
	}
}

func TestRandomGifMalformedBodies(t *testing.T) {
	cases := map[string]string{
		"empty":        ``,
		"truncated":    `{"response":"http://x/1`,
		"not object":   `["http://x/1.gif"]`,
		"no fields":    `{}`,
		"null":         `null`,
		"non string":   `{"response":42}`,
		"empty url":    `{"response":""}`,
		"blank error":  `{"error":""}`,
		"unknown only": `{"status":"ok"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv, _ := newGifServer(t, http.StatusOK, body)

			got, err := New(WithBaseURL(srv.URL)).RandomGif(context.Background(), CategoryCry)
			if got != "" {
				t.Fatalf("expected no url, got %q", got)
			}
			if !errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("expected malformed response error, got %T: %v", err, err)
			}
		})
	}
}

type stubHTTPClient struct {
	calls int
	err   error
}

func (s *stubHTTPClient) Get(context.Context, string, httpclient.RequestOptions) (httpclient.Response, error) {
	s.calls++
	return nil, s.err
}

func TestRandomGifUnknownCategorySkipsNetwork(t *testing.T) {
	stub := &stubHTTPClient{}
	client := New(WithHTTPClient(stub))

	_, err := client.RandomGif(context.Background(), Category("definitely-not-a-gif"))
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no http calls, got %d", stub.calls)
	}
}

func TestRandomGifTransportFailureWrapsCause(t *testing.T) {
	stub := &stubHTTPClient{err: context.DeadlineExceeded}
	_, err := New(WithHTTPClient(stub)).RandomGif(context.Background(), CategorySmile)

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
	if transportErr.StatusCode != 0 {
		t.Fatalf("expected zero status for failed request, got %d", transportErr.StatusCode)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected cause to be preserved")
	}
}

func TestRandomGifCancelledContext(t *testing.T) {
	srv, _ := newGifServer(t, http.StatusOK, `{"response":"http://x/1.gif"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(WithBaseURL(srv.URL)).RandomGif(ctx, CategoryHug)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected transport error kind, got %v", err)
	}
}

func TestRandomGifConcurrentCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":"http://x` + r.URL.Path + `.gif"}`))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	cats := []Category{CategoryHug, CategoryKiss, CategoryWave, CategoryPat}

	type result struct {
		cat Category
		url string
		err error
	}
	results := make(chan result, len(cats))
	for _, c := range cats {
		go func(c Category) {
			u, err := client.RandomGif(context.Background(), c)
			results <- result{cat: c, url: u, err: err}
		}(c)
	}
	for range cats {
		r := <-results
		if r.err != nil {
			t.Fatalf("%s: unexpected error %v", r.cat, r.err)
		}
		if want := "http://x/" + r.cat.String() + ".gif"; r.url != want {
			t.Fatalf("%s: expected %q, got %q", r.cat, want, r.url)
		}
	}
}
