package domain

import "time"

// Gif is one successful fetch from the GIF API.
type Gif struct {
	Category  string    `json:"category"`
	URL       string    `json:"url"`
	FetchedAt time.Time `json:"fetched_at"`
}
