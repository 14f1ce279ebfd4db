package search

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkortam/tritontory-sub002/internal/models"
	"github.com/zkortam/tritontory-sub002/internal/store"
)

type fakeArticles struct{ docs []models.Article }

func (f fakeArticles) List(ctx context.Context, opts store.ListOptions) ([]models.Article, error) {
	return f.docs, nil
}

type fakeVideos struct{ docs []models.Video }

func (f fakeVideos) List(ctx context.Context, opts store.ListOptions) ([]models.Video, error) {
	return f.docs, nil
}

type fakeResearch struct{ docs []models.ResearchArticle }

func (f fakeResearch) List(ctx context.Context, opts store.ListOptions) ([]models.ResearchArticle, error) {
	return f.docs, nil
}

type fakeLegal struct{ docs []models.LegalArticle }

func (f fakeLegal) List(ctx context.Context, opts store.ListOptions) ([]models.LegalArticle, error) {
	return f.docs, nil
}

func newTestAggregator(articles []models.Article, videos []models.Video, research []models.ResearchArticle, legal []models.LegalArticle) *Aggregator {
	return NewAggregator(fakeArticles{articles}, fakeVideos{videos}, fakeResearch{research}, fakeLegal{legal})
}

func TestSearchNoMatchesReturnsEmpty(t *testing.T) {
	agg := newTestAggregator(
		[]models.Article{{ID: "a1", Title: "Campus parking", Body: "Lots fill early."}},
		nil, nil, nil,
	)

	results, err := agg.Search(context.Background(), "quantum")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}

func TestSearchTitleOutranksBody(t *testing.T) {
	now := time.Now()
	agg := newTestAggregator(
		[]models.Article{
			{ID: "body-hit", Title: "Budget update", Body: "The tuition debate continues.", PublishedAt: now},
			{ID: "title-hit", Title: "Tuition rises again", Body: "Details inside.", PublishedAt: now},
		},
		nil, nil, nil,
	)

	results, err := agg.Search(context.Background(), "tuition")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "title-hit", results[0].ID)
	assert.Equal(t, "body-hit", results[1].ID)
}

func TestSearchCapsResults(t *testing.T) {
	articles := make([]models.Article, 30)
	for i := range articles {
		articles[i] = models.Article{
			ID:          string(rune('a' + i)),
			Title:       "Triton news roundup",
			Body:        "weekly digest",
			PublishedAt: time.Now(),
		}
	}
	agg := newTestAggregator(articles, nil, nil, nil)

	results, err := agg.Search(context.Background(), "triton")
	require.NoError(t, err)
	assert.Len(t, results, MaxResults)
}

func TestSearchStableTypeOrderOnTies(t *testing.T) {
	now := time.Now()
	agg := newTestAggregator(
		[]models.Article{{ID: "art", Title: "Solar grant", PublishedAt: now}},
		[]models.Video{{ID: "vid", Title: "Solar grant", PublishedAt: now}},
		[]models.ResearchArticle{{ID: "res", Title: "Solar grant", PublishedAt: now}},
		[]models.LegalArticle{{ID: "leg", Title: "Solar grant", PublishedAt: now}},
	)

	results, err := agg.Search(context.Background(), "solar")
	require.NoError(t, err)
	require.Len(t, results, 4)

	order := []models.ContentType{models.ContentArticle, models.ContentVideo, models.ContentResearch, models.ContentLegal}
	for i, want := range order {
		assert.Equal(t, want, results[i].Type)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	agg := newTestAggregator(nil, nil, nil, nil)

	results, err := agg.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSnippetKeepsRunesIntact(t *testing.T) {
	// Shift the match window across every possible byte offset so at
	// least one case would land mid-rune without boundary snapping.
	for _, prefix := range []string{"", "a", "ab"} {
		body := prefix + strings.Repeat("日", 200) + "tuition" + strings.Repeat("語", 200)

		out := snippet(body, "tuition")
		assert.True(t, utf8.ValidString(out), "snippet with prefix %q produced invalid UTF-8: %q", prefix, out)
		assert.Contains(t, out, "tuition")
	}
}

func TestDebouncerDropsSupersededCalls(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.Do(func() { calls.Add(1) })
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}
