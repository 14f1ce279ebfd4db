package models

import "time"

// CommentStatus is the moderation state of a comment.
// Pending comments may move to approved or rejected; both are terminal.
type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentRejected CommentStatus = "rejected"
)

// Valid reports whether s is a known moderation state.
func (s CommentStatus) Valid() bool {
	switch s {
	case CommentPending, CommentApproved, CommentRejected:
		return true
	}
	return false
}

// Comment is a viewer comment attached to a content record
type Comment struct {
	ID          string        `bson:"_id" json:"id"`
	ContentType ContentType   `bson:"content_type" json:"contentType"`
	ContentID   string        `bson:"content_id" json:"contentId"`
	AuthorName  string        `bson:"author_name" json:"authorName"`
	Body        string        `bson:"body" json:"body"`
	Status      CommentStatus `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
}
