package sports

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zkortam/tritontory-sub002/pkg/config"
)

const scoreboardBody = `{
  "leagues": [{"abbreviation": "MCBB"}],
  "events": [{
    "date": "2026-02-14T03:00Z",
    "competitions": [{
      "competitors": [
        {"homeAway": "home", "score": "71", "team": {"displayName": "UC San Diego Tritons"}},
        {"homeAway": "away", "score": "64", "team": {"displayName": "UC Irvine Anteaters"}}
      ],
      "status": {"type": {"state": "post"}}
    }]
  }]
}`

func newTestService(primary, backup string) *Service {
	cfg := &config.WidgetsConfig{
		ESPNScoreboardURL: primary,
		SportsBackupURL:   backup,
		CacheTTL:          5 * time.Minute,
	}
	svc := New(cfg)
	svc.leagues = []string{"basketball/mens-college-basketball"}
	return svc
}

func TestGetScoresParsesScoreboard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/scoreboard") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, scoreboardBody)
	}))
	defer srv.Close()

	scores := newTestService(srv.URL, "").GetScores(context.Background())

	if len(scores) != 1 {
		t.Fatalf("GetScores() returned %d entries, want 1", len(scores))
	}
	game := scores[0]
	if game.League != "MCBB" {
		t.Errorf("league = %q, want MCBB", game.League)
	}
	if game.HomeTeam != "UC San Diego Tritons" || game.HomeScore != 71 {
		t.Errorf("home side = %q %d, want UC San Diego Tritons 71", game.HomeTeam, game.HomeScore)
	}
	if game.AwayScore != 64 {
		t.Errorf("away score = %d, want 64", game.AwayScore)
	}
	if game.State != "post" {
		t.Errorf("state = %q, want post", game.State)
	}
}

func TestGetScoresBackupProvider(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer primary.Close()

	backup := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, scoreboardBody)
	}))
	defer backup.Close()

	scores := newTestService(primary.URL, backup.URL).GetScores(context.Background())
	if len(scores) != 1 {
		t.Fatalf("backup provider should serve scores, got %d entries", len(scores))
	}
	if scores[0].Fallback {
		t.Error("backup-sourced score should not carry the fallback flag")
	}
}

func TestGetScoresTotalFailure(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer down.Close()

	scores := newTestService(down.URL, down.URL).GetScores(context.Background())
	if len(scores) != 0 {
		t.Errorf("total failure should return the empty sentinel, got %d entries", len(scores))
	}
}
