package store

import (
	"testing"

	"github.com/zkortam/tritontory-sub002/internal/models"
)

func TestListOptionsFilter(t *testing.T) {
	tests := []struct {
		name string
		opts ListOptions
		want map[string]interface{}
	}{
		{
			name: "defaults to published",
			opts: ListOptions{},
			want: map[string]interface{}{"status": "published"},
		},
		{
			name: "category and featured",
			opts: ListOptions{Category: "Campus", FeaturedOnly: true},
			want: map[string]interface{}{"status": "published", "category": "Campus", "featured": true},
		},
		{
			name: "explicit status",
			opts: ListOptions{Status: "draft"},
			want: map[string]interface{}{"status": "draft"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.opts.filter()
			if len(got) != len(tt.want) {
				t.Fatalf("filter() has %d keys, want %d", len(got), len(tt.want))
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("filter()[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestListOptionsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int64
	}{
		{name: "zero gets default", limit: 0, want: defaultLimit},
		{name: "negative gets default", limit: -3, want: defaultLimit},
		{name: "in range passes through", limit: 7, want: 7},
		{name: "over max clamps", limit: 5000, want: maxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (ListOptions{Limit: tt.limit}).limit(); got != tt.want {
				t.Errorf("limit() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	if err := validateContent("Title", "Author", models.StatusPublished); err != nil {
		t.Errorf("valid content should not error: %v", err)
	}
	if err := validateContent("", "Author", models.StatusDraft); err == nil {
		t.Error("expected error for missing title")
	}
	if err := validateContent("Title", "", models.StatusDraft); err == nil {
		t.Error("expected error for missing author")
	}
	if err := validateContent("Title", "Author", models.Status("live")); err == nil {
		t.Error("expected error for unknown status")
	}
}
