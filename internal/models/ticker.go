package models

import "time"

// Ticker is a news-ticker line shown in the site header
type Ticker struct {
	ID        string    `bson:"_id" json:"id"`
	Text      string    `bson:"text" json:"text"`
	LinkURL   string    `bson:"link_url,omitempty" json:"linkUrl,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// SportBanner is a pinned sports announcement banner
type SportBanner struct {
	ID        string    `bson:"_id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Subtitle  string    `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	LinkURL   string    `bson:"link_url,omitempty" json:"linkUrl,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
