package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zkortam/tritontory-sub002/internal/models"
)

// TickerService provides news-ticker and sport-banner collection operations
type TickerService struct {
	*Store
}

// NewTickerService creates a new ticker service
func NewTickerService(s *Store) *TickerService {
	return &TickerService{Store: s}
}

// ListTickers returns active news-ticker lines, newest first
func (s *TickerService) ListTickers(ctx context.Context, limit int) ([]models.Ticker, error) {
	sort := bson.D{{Key: "created_at", Value: -1}}
	return listDocs[models.Ticker](ctx, s.db.Collection(collTickers), bson.M{"active": true}, sort, ListOptions{Limit: limit}.limit())
}

// CreateTicker inserts a news-ticker line
func (s *TickerService) CreateTicker(ctx context.Context, t *models.Ticker) error {
	if t.Text == "" {
		return fmt.Errorf("ticker text is required")
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = time.Now().UTC()
	return insertDoc(ctx, s.db.Collection(collTickers), t)
}

// DeleteTicker removes a news-ticker line
func (s *TickerService) DeleteTicker(ctx context.Context, id string) error {
	return deleteDoc(ctx, s.db.Collection(collTickers), id)
}

// ListSportBanners returns active sport banners, newest first
func (s *TickerService) ListSportBanners(ctx context.Context, limit int) ([]models.SportBanner, error) {
	sort := bson.D{{Key: "created_at", Value: -1}}
	return listDocs[models.SportBanner](ctx, s.db.Collection(collSportBanners), bson.M{"active": true}, sort, ListOptions{Limit: limit}.limit())
}

// CreateSportBanner inserts a sport banner
func (s *TickerService) CreateSportBanner(ctx context.Context, b *models.SportBanner) error {
	if b.Title == "" {
		return fmt.Errorf("banner title is required")
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.CreatedAt = time.Now().UTC()
	return insertDoc(ctx, s.db.Collection(collSportBanners), b)
}

// DeleteSportBanner removes a sport banner
func (s *TickerService) DeleteSportBanner(ctx context.Context, id string) error {
	return deleteDoc(ctx, s.db.Collection(collSportBanners), id)
}
