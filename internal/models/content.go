package models

import "time"

// Status is the publication state of a content record.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Valid reports whether s is one of the known publication states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ContentType identifies one of the four content collections.
type ContentType string

const (
	ContentArticle  ContentType = "article"
	ContentVideo    ContentType = "video"
	ContentResearch ContentType = "research"
	ContentLegal    ContentType = "legal"
)

// Valid reports whether t names a known content collection.
func (t ContentType) Valid() bool {
	switch t {
	case ContentArticle, ContentVideo, ContentResearch, ContentLegal:
		return true
	}
	return false
}

// Article is a news article document
type Article struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Body        string    `bson:"body" json:"body"`
	AuthorName  string    `bson:"author_name" json:"authorName"`
	Category    string    `bson:"category" json:"category"`
	ImageURL    string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Featured    bool      `bson:"featured" json:"featured"`
	Status      Status    `bson:"status" json:"status"`
	PublishedAt time.Time `bson:"published_at" json:"publishedAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// Video is a video post document
type Video struct {
	ID           string    `bson:"_id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Body         string    `bson:"body" json:"body"`
	AuthorName   string    `bson:"author_name" json:"authorName"`
	Category     string    `bson:"category" json:"category"`
	VideoURL     string    `bson:"video_url" json:"videoUrl"`
	ThumbnailURL string    `bson:"thumbnail_url,omitempty" json:"thumbnailUrl,omitempty"`
	DurationSec  int       `bson:"duration_sec" json:"durationSec"`
	Featured     bool      `bson:"featured" json:"featured"`
	Status       Status    `bson:"status" json:"status"`
	PublishedAt  time.Time `bson:"published_at" json:"publishedAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// ResearchArticle is a research publication document
type ResearchArticle struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Abstract    string    `bson:"abstract" json:"abstract"`
	Body        string    `bson:"body" json:"body"`
	AuthorName  string    `bson:"author_name" json:"authorName"`
	Department  string    `bson:"department" json:"department"`
	Featured    bool      `bson:"featured" json:"featured"`
	Status      Status    `bson:"status" json:"status"`
	PublishedAt time.Time `bson:"published_at" json:"publishedAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// LegalArticle is a legal-analysis document
type LegalArticle struct {
	ID           string    `bson:"_id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Body         string    `bson:"body" json:"body"`
	AuthorName   string    `bson:"author_name" json:"authorName"`
	PracticeArea string    `bson:"practice_area" json:"practiceArea"`
	Citation     string    `bson:"citation,omitempty" json:"citation,omitempty"`
	Featured     bool      `bson:"featured" json:"featured"`
	Status       Status    `bson:"status" json:"status"`
	PublishedAt  time.Time `bson:"published_at" json:"publishedAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
