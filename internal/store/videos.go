package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zkortam/tritontory-sub002/internal/models"
)

// VideoService provides video collection operations
type VideoService struct {
	*Store
}

// NewVideoService creates a new video service
func NewVideoService(s *Store) *VideoService {
	return &VideoService{Store: s}
}

// List returns videos ordered by publish date descending
func (s *VideoService) List(ctx context.Context, opts ListOptions) ([]models.Video, error) {
	return listDocs[models.Video](ctx, s.db.Collection(collVideos), opts.filter(), publishedDesc, opts.limit())
}

// Get returns one video, or (nil, nil) when it does not exist
func (s *VideoService) Get(ctx context.Context, id string) (*models.Video, error) {
	return getDoc[models.Video](ctx, s.db.Collection(collVideos), id)
}

// Create inserts a new video, filling defaults for missing fields
func (s *VideoService) Create(ctx context.Context, v *models.Video) error {
	if err := validateContent(v.Title, v.AuthorName, v.Status); err != nil {
		return err
	}
	if v.VideoURL == "" {
		return fmt.Errorf("video URL is required")
	}
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Status == "" {
		v.Status = models.StatusDraft
	}
	now := time.Now().UTC()
	if v.PublishedAt.IsZero() {
		v.PublishedAt = now
	}
	v.UpdatedAt = now
	return insertDoc(ctx, s.db.Collection(collVideos), v)
}

// Update replaces a video document and stamps UpdatedAt
func (s *VideoService) Update(ctx context.Context, v *models.Video) error {
	if err := validateContent(v.Title, v.AuthorName, v.Status); err != nil {
		return err
	}
	v.UpdatedAt = time.Now().UTC()
	return replaceDoc(ctx, s.db.Collection(collVideos), v.ID, v)
}

// Delete removes a video
func (s *VideoService) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, s.db.Collection(collVideos), id)
}
