package sports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/zkortam/tritontory-sub002/internal/cache"
	"github.com/zkortam/tritontory-sub002/internal/models"
	"github.com/zkortam/tritontory-sub002/pkg/config"
	"github.com/zkortam/tritontory-sub002/pkg/logging"
	"github.com/zkortam/tritontory-sub002/pkg/telemetry"
)

// Leagues polled for the campus scoreboard widget.
var defaultLeagues = []string{
	"basketball/mens-college-basketball",
	"basketball/womens-college-basketball",
	"baseball/college-baseball",
}

// Service serves scoreboard entries from the ESPN site API, falling back
// to a mirror endpoint when the primary is unreachable.
type Service struct {
	primaryURL string
	backupURL  string
	leagues    []string
	httpClient *http.Client
	cache      *cache.TTLCache[[]models.SportScore]
	logger     *zap.Logger
}

// New creates a new sports service
func New(cfg *config.WidgetsConfig) *Service {
	s := &Service{
		primaryURL: cfg.ESPNScoreboardURL,
		backupURL:  cfg.SportsBackupURL,
		leagues:    defaultLeagues,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logging.GetLogger().With(zap.String("component", "sports-service")),
	}
	s.cache = cache.NewTTLCache("sports", cfg.CacheTTL, FallbackScores(), s.refresh)
	return s
}

// FallbackScores is the static sentinel served when every provider fails.
func FallbackScores() []models.SportScore {
	return []models.SportScore{}
}

// GetScores returns the cached scoreboard, refreshing it when stale.
// It never fails; total upstream failure degrades to an empty sentinel.
func (s *Service) GetScores(ctx context.Context) []models.SportScore {
	return s.cache.Get(ctx)
}

func (s *Service) refresh(ctx context.Context) ([]models.SportScore, error) {
	ctx, span := telemetry.StartSpan(ctx, "sports.refresh")
	defer span.End()

	scores, err := s.fetchAll(ctx, s.primaryURL)
	if err != nil && s.backupURL != "" {
		s.logger.Warn("Primary sports provider failed, trying backup", zap.Error(err))
		scores, err = s.fetchAll(ctx, s.backupURL)
	}
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// fetchAll queries every league on one provider. A league failing is logged
// and skipped; the provider as a whole fails only when no league loads.
func (s *Service) fetchAll(ctx context.Context, baseURL string) ([]models.SportScore, error) {
	var scores []models.SportScore
	succeeded := 0

	for _, league := range s.leagues {
		leagueScores, err := s.fetchLeague(ctx, baseURL, league)
		if err != nil {
			s.logger.Debug("League fetch failed", zap.String("league", league), zap.Error(err))
			continue
		}
		succeeded++
		scores = append(scores, leagueScores...)
	}

	if succeeded == 0 {
		return nil, fmt.Errorf("all %d league fetches failed on %s", len(s.leagues), baseURL)
	}
	return scores, nil
}

// scoreboardResponse is the subset of the ESPN scoreboard payload we read.
type scoreboardResponse struct {
	Leagues []struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"leagues"`
	Events []struct {
		Date         string `json:"date"`
		Competitions []struct {
			Competitors []struct {
				HomeAway string `json:"homeAway"`
				Score    string `json:"score"`
				Team     struct {
					DisplayName string `json:"displayName"`
				} `json:"team"`
			} `json:"competitors"`
			Status struct {
				Type struct {
					State string `json:"state"`
				} `json:"type"`
			} `json:"status"`
		} `json:"competitions"`
	} `json:"events"`
}

func (s *Service) fetchLeague(ctx context.Context, baseURL, league string) ([]models.SportScore, error) {
	url := fmt.Sprintf("%s/%s/scoreboard", baseURL, league)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	var board scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		return nil, fmt.Errorf("failed to decode scoreboard: %w", err)
	}

	leagueName := league
	if len(board.Leagues) > 0 && board.Leagues[0].Abbreviation != "" {
		leagueName = board.Leagues[0].Abbreviation
	}

	var scores []models.SportScore
	for _, event := range board.Events {
		if len(event.Competitions) == 0 {
			continue
		}
		comp := event.Competitions[0]

		score := models.SportScore{
			League: leagueName,
			State:  comp.Status.Type.State,
		}
		if ts, err := time.Parse("2006-01-02T15:04Z", event.Date); err == nil {
			score.StartTime = ts
		}
		for _, c := range comp.Competitors {
			points, _ := strconv.Atoi(c.Score)
			if c.HomeAway == "home" {
				score.HomeTeam = c.Team.DisplayName
				score.HomeScore = points
			} else {
				score.AwayTeam = c.Team.DisplayName
				score.AwayScore = points
			}
		}
		scores = append(scores, score)
	}
	return scores, nil
}
