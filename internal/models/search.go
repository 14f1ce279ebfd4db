package models

import "time"

// SearchResult is one cross-collection hit returned by the search aggregator
type SearchResult struct {
	Type        ContentType `json:"type"`
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Snippet     string      `json:"snippet"`
	Score       int         `json:"score"`
	PublishedAt time.Time   `json:"publishedAt"`
}
