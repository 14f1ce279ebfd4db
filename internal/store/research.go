package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zkortam/tritontory-sub002/internal/models"
)

// ResearchService provides research collection operations
type ResearchService struct {
	*Store
}

// NewResearchService creates a new research service
func NewResearchService(s *Store) *ResearchService {
	return &ResearchService{Store: s}
}

// List returns research articles ordered by publish date descending.
// The category option filters on the department field.
func (s *ResearchService) List(ctx context.Context, opts ListOptions) ([]models.ResearchArticle, error) {
	filter := opts.filter()
	if opts.Category != "" {
		delete(filter, "category")
		filter["department"] = opts.Category
	}
	return listDocs[models.ResearchArticle](ctx, s.db.Collection(collResearch), filter, publishedDesc, opts.limit())
}

// Get returns one research article, or (nil, nil) when it does not exist
func (s *ResearchService) Get(ctx context.Context, id string) (*models.ResearchArticle, error) {
	return getDoc[models.ResearchArticle](ctx, s.db.Collection(collResearch), id)
}

// Create inserts a new research article, filling defaults for missing fields
func (s *ResearchService) Create(ctx context.Context, r *models.ResearchArticle) error {
	if err := validateContent(r.Title, r.AuthorName, r.Status); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = models.StatusDraft
	}
	now := time.Now().UTC()
	if r.PublishedAt.IsZero() {
		r.PublishedAt = now
	}
	r.UpdatedAt = now
	return insertDoc(ctx, s.db.Collection(collResearch), r)
}

// Update replaces a research document and stamps UpdatedAt
func (s *ResearchService) Update(ctx context.Context, r *models.ResearchArticle) error {
	if err := validateContent(r.Title, r.AuthorName, r.Status); err != nil {
		return err
	}
	r.UpdatedAt = time.Now().UTC()
	return replaceDoc(ctx, s.db.Collection(collResearch), r.ID, r)
}

// Delete removes a research article
func (s *ResearchService) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, s.db.Collection(collResearch), id)
}

// Departments returns the distinct department names with published research
func (s *ResearchService) Departments(ctx context.Context) ([]string, error) {
	raw, err := s.db.Collection(collResearch).Distinct(ctx, "department", bson.M{"status": "published"})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if name, ok := v.(string); ok && name != "" {
			out = append(out, name)
		}
	}
	return out, nil
}
