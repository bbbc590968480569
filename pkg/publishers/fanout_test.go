package publishers

import (
	"context"
	"errors"
	"testing"
)

type stubPublisher struct {
	id    string
	typ   string
	err   error
	calls int
}

func (s *stubPublisher) ID() string   { return s.id }
func (s *stubPublisher) Type() string { return s.typ }
func (s *stubPublisher) Publish(context.Context, Event) error {
	s.calls++
	return s.err
}

func TestFanoutPublishAggregatesErrors(t *testing.T) {
	fanout := NewFanout([]Publisher{
		&stubPublisher{id: "ok", typ: "http"},
		&stubPublisher{id: "bad", typ: "http", err: errors.New("failed")},
		nil,
	})
	if fanout.Size() != 2 {
		t.Fatalf("expected nil publishers to be dropped, size %d", fanout.Size())
	}

	count, err := fanout.Publish(context.Background(), Event{Category: "hug"})
	if count != 1 {
		t.Fatalf("expected 1 success, got %d", count)
	}
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
}

func TestFanoutSkipsFilteredCategories(t *testing.T) {
	hugsOnly := &stubPublisher{id: "hugs", typ: "http"}
	everything := &stubPublisher{id: "all", typ: "sqs"}
	fanout := NewFanout([]Publisher{
		&filteredPublisher{Publisher: hugsOnly, cfg: PublisherConfig{Categories: []string{"hug"}}},
		everything,
	})

	count, err := fanout.Publish(context.Background(), Event{Category: "slap"})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if count != 1 || hugsOnly.calls != 0 || everything.calls != 1 {
		t.Fatalf("unexpected dispatch: count=%d hugs=%d all=%d", count, hugsOnly.calls, everything.calls)
	}
}

func TestBuildAllWithDefaultRegistry(t *testing.T) {
	pubs, err := BuildAll(context.Background(), DefaultRegistry(), []PublisherConfig{
		{ID: "http", Type: TypeHTTP, HTTP: &HTTPPublisherConfig{URL: "https://example.com"}},
		{ID: "filtered", Type: TypeHTTP, Categories: []string{"wave"}, HTTP: &HTTPPublisherConfig{URL: "https://example.com"}},
	}, nil)
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	if len(pubs) != 2 {
		t.Fatalf("expected 2 publishers, got %d", len(pubs))
	}
	if _, ok := pubs[1].(categoryFilter); !ok {
		t.Fatalf("expected category-restricted publisher to be wrapped")
	}
}

func TestBuildAllUnknownType(t *testing.T) {
	_, err := BuildAll(context.Background(), DefaultRegistry(), []PublisherConfig{{ID: "x", Type: "carrier-pigeon"}}, nil)
	if err == nil {
		t.Fatalf("expected error for unknown publisher type")
	}
}
