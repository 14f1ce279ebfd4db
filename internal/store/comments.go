package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zkortam/tritontory-sub002/internal/models"
)

var (
	// ErrTerminalStatus is returned when a moderation transition is
	// attempted on a comment that is no longer pending.
	ErrTerminalStatus = errors.New("comment status is terminal")
	// ErrCommentNotFound is returned by SetStatus for an unknown comment id
	ErrCommentNotFound = errors.New("comment not found")
)

// CommentService provides comment collection operations
type CommentService struct {
	*Store
}

// NewCommentService creates a new comment service
func NewCommentService(s *Store) *CommentService {
	return &CommentService{Store: s}
}

// Create inserts a viewer comment. New comments always start pending
// regardless of what the caller supplied.
func (s *CommentService) Create(ctx context.Context, c *models.Comment) error {
	if !c.ContentType.Valid() {
		return fmt.Errorf("invalid content type: %s", c.ContentType)
	}
	if c.ContentID == "" {
		return fmt.Errorf("content id is required")
	}
	if c.Body == "" {
		return fmt.Errorf("comment body is required")
	}
	if c.AuthorName == "" {
		c.AuthorName = "Anonymous"
	}
	c.ID = uuid.NewString()
	c.Status = models.CommentPending
	c.CreatedAt = time.Now().UTC()
	return insertDoc(ctx, s.db.Collection(collComments), c)
}

// List returns comments filtered by moderation status, newest first.
// An empty status returns all comments.
func (s *CommentService) List(ctx context.Context, status models.CommentStatus, limit int) ([]models.Comment, error) {
	filter := bson.M{}
	if status != "" {
		if !status.Valid() {
			return nil, fmt.Errorf("invalid comment status: %s", status)
		}
		filter["status"] = status
	}
	sort := bson.D{{Key: "created_at", Value: -1}}
	return listDocs[models.Comment](ctx, s.db.Collection(collComments), filter, sort, ListOptions{Limit: limit}.limit())
}

// ListForContent returns approved comments for one content record, newest first
func (s *CommentService) ListForContent(ctx context.Context, contentType models.ContentType, contentID string, limit int) ([]models.Comment, error) {
	filter := bson.M{
		"content_type": contentType,
		"content_id":   contentID,
		"status":       models.CommentApproved,
	}
	sort := bson.D{{Key: "created_at", Value: -1}}
	return listDocs[models.Comment](ctx, s.db.Collection(collComments), filter, sort, ListOptions{Limit: limit}.limit())
}

// SetStatus transitions a comment from pending to approved or rejected.
// Approved and rejected are terminal; any other transition fails.
func (s *CommentService) SetStatus(ctx context.Context, id string, status models.CommentStatus) error {
	if status != models.CommentApproved && status != models.CommentRejected {
		return fmt.Errorf("invalid target status: %s", status)
	}

	res := s.db.Collection(collComments).FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": models.CommentPending},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err := res.Err(); err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("failed to update comment status: %w", err)
		}
		// Either the comment is gone or it already left pending.
		existing, getErr := getDoc[models.Comment](ctx, s.db.Collection(collComments), id)
		if getErr != nil {
			return getErr
		}
		if existing == nil {
			return ErrCommentNotFound
		}
		return ErrTerminalStatus
	}
	return nil
}

// Delete removes a comment
func (s *CommentService) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, s.db.Collection(collComments), id)
}
