package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zkortam/tritontory-sub002/internal/models"
)

// ArticleService provides article collection operations
type ArticleService struct {
	*Store
}

// NewArticleService creates a new article service
func NewArticleService(s *Store) *ArticleService {
	return &ArticleService{Store: s}
}

// List returns articles ordered by publish date descending
func (s *ArticleService) List(ctx context.Context, opts ListOptions) ([]models.Article, error) {
	return listDocs[models.Article](ctx, s.db.Collection(collArticles), opts.filter(), publishedDesc, opts.limit())
}

// Get returns one article, or (nil, nil) when it does not exist
func (s *ArticleService) Get(ctx context.Context, id string) (*models.Article, error) {
	return getDoc[models.Article](ctx, s.db.Collection(collArticles), id)
}

// Create inserts a new article, filling defaults for missing fields
func (s *ArticleService) Create(ctx context.Context, a *models.Article) error {
	if err := validateContent(a.Title, a.AuthorName, a.Status); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = models.StatusDraft
	}
	now := time.Now().UTC()
	if a.PublishedAt.IsZero() {
		a.PublishedAt = now
	}
	a.UpdatedAt = now
	return insertDoc(ctx, s.db.Collection(collArticles), a)
}

// Update replaces an article document and stamps UpdatedAt
func (s *ArticleService) Update(ctx context.Context, a *models.Article) error {
	if err := validateContent(a.Title, a.AuthorName, a.Status); err != nil {
		return err
	}
	a.UpdatedAt = time.Now().UTC()
	return replaceDoc(ctx, s.db.Collection(collArticles), a.ID, a)
}

// Delete removes an article
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, s.db.Collection(collArticles), id)
}

// validateContent checks the fields every content record requires.
func validateContent(title, author string, status models.Status) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if author == "" {
		return fmt.Errorf("author name is required")
	}
	if status != "" && !status.Valid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	return nil
}
