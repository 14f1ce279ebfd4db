package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zkortam/tritontory-sub002/internal/cache"
	"github.com/zkortam/tritontory-sub002/internal/models"
	"github.com/zkortam/tritontory-sub002/pkg/config"
	"github.com/zkortam/tritontory-sub002/pkg/logging"
	"github.com/zkortam/tritontory-sub002/pkg/telemetry"
)

// FallbackSnapshot is the static sentinel served when every upstream step
// fails and no earlier observation is cached.
var FallbackSnapshot = models.WeatherSnapshot{
	Condition: "Unavailable",
	Icon:      "unknown",
	Location:  "La Jolla, CA",
	Fallback:  true,
}

// Service serves the campus weather snapshot from the National Weather
// Service API. One refresh walks the NWS chain: points lookup, station
// list, latest observation.
type Service struct {
	baseURL    string
	lat, lon   float64
	httpClient *http.Client
	cache      *cache.TTLCache[models.WeatherSnapshot]
	logger     *zap.Logger
}

// New creates a new weather service
func New(cfg *config.WidgetsConfig) *Service {
	s := &Service{
		baseURL:    cfg.WeatherBaseURL,
		lat:        cfg.WeatherLat,
		lon:        cfg.WeatherLon,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logging.GetLogger().With(zap.String("component", "weather-service")),
	}
	s.cache = cache.NewTTLCache("weather", cfg.CacheTTL, FallbackSnapshot, s.refresh)
	return s
}

// GetWeather returns the cached snapshot, refreshing it when stale.
// It never fails; total upstream failure degrades to the sentinel.
func (s *Service) GetWeather(ctx context.Context) models.WeatherSnapshot {
	return s.cache.Get(ctx)
}

type pointsResponse struct {
	Properties struct {
		ObservationStations string `json:"observationStations"`
		RelativeLocation    struct {
			Properties struct {
				City  string `json:"city"`
				State string `json:"state"`
			} `json:"properties"`
		} `json:"relativeLocation"`
	} `json:"properties"`
}

type stationsResponse struct {
	Features []struct {
		Properties struct {
			StationIdentifier string `json:"stationIdentifier"`
		} `json:"properties"`
	} `json:"features"`
}

type observationResponse struct {
	Properties struct {
		TextDescription string `json:"textDescription"`
		Icon            string `json:"icon"`
		Temperature     struct {
			Value *float64 `json:"value"` // Celsius
		} `json:"temperature"`
		RelativeHumidity struct {
			Value *float64 `json:"value"`
		} `json:"relativeHumidity"`
		WindSpeed struct {
			Value *float64 `json:"value"` // km/h
		} `json:"windSpeed"`
	} `json:"properties"`
}

func (s *Service) refresh(ctx context.Context) (models.WeatherSnapshot, error) {
	ctx, span := telemetry.StartSpan(ctx, "weather.refresh")
	defer span.End()

	var points pointsResponse
	pointsURL := fmt.Sprintf("%s/points/%.4f,%.4f", s.baseURL, s.lat, s.lon)
	if err := s.getJSON(ctx, pointsURL, &points); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("points lookup failed: %w", err)
	}
	if points.Properties.ObservationStations == "" {
		return models.WeatherSnapshot{}, fmt.Errorf("points response has no station list")
	}

	var stations stationsResponse
	if err := s.getJSON(ctx, points.Properties.ObservationStations, &stations); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("station list failed: %w", err)
	}
	if len(stations.Features) == 0 {
		return models.WeatherSnapshot{}, fmt.Errorf("no observation stations near %.4f,%.4f", s.lat, s.lon)
	}

	stationID := stations.Features[0].Properties.StationIdentifier
	var obs observationResponse
	obsURL := fmt.Sprintf("%s/stations/%s/observations/latest", s.baseURL, stationID)
	if err := s.getJSON(ctx, obsURL, &obs); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("latest observation failed: %w", err)
	}

	snapshot := models.WeatherSnapshot{
		Condition: obs.Properties.TextDescription,
		Icon:      iconKey(obs.Properties.Icon),
		Location:  locationLabel(points),
	}
	if v := obs.Properties.Temperature.Value; v != nil {
		snapshot.TemperatureF = *v*9/5 + 32
	}
	if v := obs.Properties.RelativeHumidity.Value; v != nil {
		snapshot.Humidity = *v
	}
	if v := obs.Properties.WindSpeed.Value; v != nil {
		snapshot.WindMPH = *v * 0.621371
	}
	return snapshot, nil
}

func locationLabel(points pointsResponse) string {
	loc := points.Properties.RelativeLocation.Properties
	if loc.City == "" {
		return FallbackSnapshot.Location
	}
	if loc.State == "" {
		return loc.City
	}
	return loc.City + ", " + loc.State
}

// iconKey reduces an NWS icon URL like
// https://api.weather.gov/icons/land/day/few?size=medium to "few".
func iconKey(iconURL string) string {
	if iconURL == "" {
		return "unknown"
	}
	trimmed := iconURL
	if i := strings.IndexByte(trimmed, '?'); i >= 0 {
		trimmed = trimmed[:i]
	}
	trimmed = strings.TrimSuffix(trimmed, "/")
	if i := strings.LastIndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	if trimmed == "" {
		return "unknown"
	}
	return trimmed
}

func (s *Service) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	// NWS requires an identifying User-Agent.
	req.Header.Set("User-Agent", "tritontory/1.0 (webmaster@tritontory.example)")
	req.Header.Set("Accept", "application/geo+json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
