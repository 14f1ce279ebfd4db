package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zkortam/tritontory-sub002/internal/models"
)

// LegalService provides legal-analysis collection operations
type LegalService struct {
	*Store
}

// NewLegalService creates a new legal service
func NewLegalService(s *Store) *LegalService {
	return &LegalService{Store: s}
}

// List returns legal articles ordered by publish date descending.
// The category option filters on the practice area field.
func (s *LegalService) List(ctx context.Context, opts ListOptions) ([]models.LegalArticle, error) {
	filter := opts.filter()
	if opts.Category != "" {
		delete(filter, "category")
		filter["practice_area"] = opts.Category
	}
	return listDocs[models.LegalArticle](ctx, s.db.Collection(collLegal), filter, publishedDesc, opts.limit())
}

// Get returns one legal article, or (nil, nil) when it does not exist
func (s *LegalService) Get(ctx context.Context, id string) (*models.LegalArticle, error) {
	return getDoc[models.LegalArticle](ctx, s.db.Collection(collLegal), id)
}

// Create inserts a new legal article, filling defaults for missing fields
func (s *LegalService) Create(ctx context.Context, l *models.LegalArticle) error {
	if err := validateContent(l.Title, l.AuthorName, l.Status); err != nil {
		return err
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Status == "" {
		l.Status = models.StatusDraft
	}
	now := time.Now().UTC()
	if l.PublishedAt.IsZero() {
		l.PublishedAt = now
	}
	l.UpdatedAt = now
	return insertDoc(ctx, s.db.Collection(collLegal), l)
}

// Update replaces a legal document and stamps UpdatedAt
func (s *LegalService) Update(ctx context.Context, l *models.LegalArticle) error {
	if err := validateContent(l.Title, l.AuthorName, l.Status); err != nil {
		return err
	}
	l.UpdatedAt = time.Now().UTC()
	return replaceDoc(ctx, s.db.Collection(collLegal), l.ID, l)
}

// Delete removes a legal article
func (s *LegalService) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, s.db.Collection(collLegal), id)
}
