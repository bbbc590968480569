package publishers

import (
	"time"

	"github.com/kawaii-hq/kawaii-go/internal/domain"
)

// Event represents the payload published downstream for one fetched GIF.
type Event struct {
	Category    string    `json:"category"`
	URL         string    `json:"url"`
	FetchedAt   time.Time `json:"fetched_at"`
	PublishedAt time.Time `json:"published_at"`
}

// NewEvent constructs an Event for gif.
func NewEvent(gif domain.Gif) Event {
	return Event{
		Category:    gif.Category,
		URL:         gif.URL,
		FetchedAt:   gif.FetchedAt,
		PublishedAt: time.Now().UTC(),
	}
}
