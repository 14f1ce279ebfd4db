package api

import (
	"context"

	"github.com/zkortam/tritontory-sub002/internal/models"
	"github.com/zkortam/tritontory-sub002/internal/store"
)

// The store surface the handlers depend on, kept as small interfaces so
// tests can swap in-memory fakes for the document store.

// ArticleStore covers the article collection operations.
type ArticleStore interface {
	List(ctx context.Context, opts store.ListOptions) ([]models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	Create(ctx context.Context, a *models.Article) error
	Update(ctx context.Context, a *models.Article) error
	Delete(ctx context.Context, id string) error
}

// VideoStore covers the video collection operations.
type VideoStore interface {
	List(ctx context.Context, opts store.ListOptions) ([]models.Video, error)
	Get(ctx context.Context, id string) (*models.Video, error)
	Create(ctx context.Context, v *models.Video) error
	Update(ctx context.Context, v *models.Video) error
	Delete(ctx context.Context, id string) error
}

// ResearchStore covers the research collection operations.
type ResearchStore interface {
	List(ctx context.Context, opts store.ListOptions) ([]models.ResearchArticle, error)
	Departments(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (*models.ResearchArticle, error)
	Create(ctx context.Context, r *models.ResearchArticle) error
	Update(ctx context.Context, r *models.ResearchArticle) error
	Delete(ctx context.Context, id string) error
}

// LegalStore covers the legal collection operations.
type LegalStore interface {
	List(ctx context.Context, opts store.ListOptions) ([]models.LegalArticle, error)
	Get(ctx context.Context, id string) (*models.LegalArticle, error)
	Create(ctx context.Context, l *models.LegalArticle) error
	Update(ctx context.Context, l *models.LegalArticle) error
	Delete(ctx context.Context, id string) error
}

// CommentStore covers the comment collection operations.
type CommentStore interface {
	Create(ctx context.Context, c *models.Comment) error
	List(ctx context.Context, status models.CommentStatus, limit int) ([]models.Comment, error)
	ListForContent(ctx context.Context, contentType models.ContentType, contentID string, limit int) ([]models.Comment, error)
	SetStatus(ctx context.Context, id string, status models.CommentStatus) error
	Delete(ctx context.Context, id string) error
}

// TickerStore covers the news-ticker and sport-banner collections.
type TickerStore interface {
	ListTickers(ctx context.Context, limit int) ([]models.Ticker, error)
	CreateTicker(ctx context.Context, t *models.Ticker) error
	DeleteTicker(ctx context.Context, id string) error
	ListSportBanners(ctx context.Context, limit int) ([]models.SportBanner, error)
	CreateSportBanner(ctx context.Context, b *models.SportBanner) error
	DeleteSportBanner(ctx context.Context, id string) error
}

// UserAdminStore covers the user operations the admin surface needs.
type UserAdminStore interface {
	Get(ctx context.Context, id string) (*models.User, error)
	SetRole(ctx context.Context, id string, role models.Role) error
}

// Searcher runs the cross-collection search.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// StockProvider serves the cached stock quote set.
type StockProvider interface {
	GetStockData(ctx context.Context) []models.StockQuote
	Quote(ctx context.Context, symbol string) (models.StockQuote, bool)
}

// WeatherProvider serves the cached weather snapshot.
type WeatherProvider interface {
	GetWeather(ctx context.Context) models.WeatherSnapshot
}

// SportsProvider serves the cached scoreboard.
type SportsProvider interface {
	GetScores(ctx context.Context) []models.SportScore
}
