package search

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/zkortam/tritontory-sub002/internal/models"
	"github.com/zkortam/tritontory-sub002/internal/store"
	"github.com/zkortam/tritontory-sub002/pkg/logging"
	"github.com/zkortam/tritontory-sub002/pkg/telemetry"
)

// MaxResults caps the merged result set handed to the search modal.
const MaxResults = 20

// How many recent documents each collection contributes to the in-memory
// match pass.
const perTypeFetch = 50

// ArticleLister lists recent articles for the match pass.
type ArticleLister interface {
	List(ctx context.Context, opts store.ListOptions) ([]models.Article, error)
}

// VideoLister lists recent videos for the match pass.
type VideoLister interface {
	List(ctx context.Context, opts store.ListOptions) ([]models.Video, error)
}

// ResearchLister lists recent research articles for the match pass.
type ResearchLister interface {
	List(ctx context.Context, opts store.ListOptions) ([]models.ResearchArticle, error)
}

// LegalLister lists recent legal articles for the match pass.
type LegalLister interface {
	List(ctx context.Context, opts store.ListOptions) ([]models.LegalArticle, error)
}

// Aggregator fans a free-text query out across the four content
// collections in parallel, matches naively against title and body fields
// in memory, and merges the hits into one ranked, capped list.
type Aggregator struct {
	articles ArticleLister
	videos   VideoLister
	research ResearchLister
	legal    LegalLister
	logger   *zap.Logger
}

// NewAggregator creates a new search aggregator
func NewAggregator(articles ArticleLister, videos VideoLister, research ResearchLister, legal LegalLister) *Aggregator {
	return &Aggregator{
		articles: articles,
		videos:   videos,
		research: research,
		legal:    legal,
		logger:   logging.GetLogger().With(zap.String("component", "search")),
	}
}

// Search returns the ranked, capped cross-type results for query.
// No matches anywhere is an empty slice, not an error. A collection that
// fails to load is logged and contributes nothing.
func (a *Aggregator) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "search.query")
	defer span.End()

	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return []models.SearchResult{}, nil
	}

	opts := store.ListOptions{Limit: perTypeFetch}
	buckets := make([][]models.SearchResult, 4)

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		docs, err := a.articles.List(ctx, opts)
		if err != nil {
			a.logger.Warn("Article search query failed", zap.Error(err))
			return
		}
		for _, d := range docs {
			if r, ok := match(models.ContentArticle, d.ID, d.Title, d.Body, d.PublishedAt, query); ok {
				buckets[0] = append(buckets[0], r)
			}
		}
	}()

	go func() {
		defer wg.Done()
		docs, err := a.videos.List(ctx, opts)
		if err != nil {
			a.logger.Warn("Video search query failed", zap.Error(err))
			return
		}
		for _, d := range docs {
			if r, ok := match(models.ContentVideo, d.ID, d.Title, d.Body, d.PublishedAt, query); ok {
				buckets[1] = append(buckets[1], r)
			}
		}
	}()

	go func() {
		defer wg.Done()
		docs, err := a.research.List(ctx, opts)
		if err != nil {
			a.logger.Warn("Research search query failed", zap.Error(err))
			return
		}
		for _, d := range docs {
			if r, ok := match(models.ContentResearch, d.ID, d.Title, d.Abstract+" "+d.Body, d.PublishedAt, query); ok {
				buckets[2] = append(buckets[2], r)
			}
		}
	}()

	go func() {
		defer wg.Done()
		docs, err := a.legal.List(ctx, opts)
		if err != nil {
			a.logger.Warn("Legal search query failed", zap.Error(err))
			return
		}
		for _, d := range docs {
			if r, ok := match(models.ContentLegal, d.ID, d.Title, d.Body, d.PublishedAt, query); ok {
				buckets[3] = append(buckets[3], r)
			}
		}
	}()

	wg.Wait()

	merged := make([]models.SearchResult, 0, MaxResults)
	for _, b := range buckets {
		merged = append(merged, b...)
	}

	sortResults(merged)

	if len(merged) > MaxResults {
		merged = merged[:MaxResults]
	}
	return merged, nil
}

// typeRank is the stable per-type tie-break order. Arbitrary but fixed.
var typeRank = map[models.ContentType]int{
	models.ContentArticle:  0,
	models.ContentVideo:    1,
	models.ContentResearch: 2,
	models.ContentLegal:    3,
}

// sortResults orders by score descending, then the fixed type order, then
// publish date descending, then id, so equal-relevance ordering is
// deterministic across runs.
func sortResults(results []models.SearchResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if typeRank[results[i].Type] != typeRank[results[j].Type] {
			return typeRank[results[i].Type] < typeRank[results[j].Type]
		}
		if !results[i].PublishedAt.Equal(results[j].PublishedAt) {
			return results[i].PublishedAt.After(results[j].PublishedAt)
		}
		return results[i].ID < results[j].ID
	})
}

// match scores one document against the lowercased query. A title hit
// outranks a body hit.
func match(t models.ContentType, id, title, body string, publishedAt time.Time, query string) (models.SearchResult, bool) {
	score := 0
	if strings.Contains(strings.ToLower(title), query) {
		score += 2
	}
	if strings.Contains(strings.ToLower(body), query) {
		score++
	}
	if score == 0 {
		return models.SearchResult{}, false
	}
	return models.SearchResult{
		Type:        t,
		ID:          id,
		Title:       title,
		Snippet:     snippet(body, query),
		Score:       score,
		PublishedAt: publishedAt,
	}, true
}

const snippetLen = 160

// snippet extracts a short window of body text around the first match.
// Window edges snap outward to rune boundaries so multi-byte characters
// are never cut in half.
func snippet(body, query string) string {
	idx := strings.Index(strings.ToLower(body), query)
	if idx < 0 {
		idx = 0
	}
	start := idx - snippetLen/4
	if start < 0 {
		start = 0
	}
	end := start + snippetLen
	if end > len(body) {
		end = len(body)
	}
	for start > 0 && !utf8.RuneStart(body[start]) {
		start--
	}
	for end < len(body) && !utf8.RuneStart(body[end]) {
		end++
	}
	out := body[start:end]
	if start > 0 {
		out = "…" + out
	}
	if end < len(body) {
		out += "…"
	}
	return out
}
