package stocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/zkortam/tritontory-sub002/internal/cache"
	"github.com/zkortam/tritontory-sub002/internal/models"
	"github.com/zkortam/tritontory-sub002/pkg/config"
	"github.com/zkortam/tritontory-sub002/pkg/logging"
	"github.com/zkortam/tritontory-sub002/pkg/telemetry"
)

// Service serves stock quotes with bounded staleness. Quotes come from the
// Yahoo chart endpoint first, then the marketdata endpoint; a symbol that
// fails both yields a zero-value entry without aborting the batch.
type Service struct {
	symbols       []string
	yahooURL      string
	marketDataURL string
	httpClient    *http.Client
	cache         *cache.TTLCache[[]models.StockQuote]
	logger        *zap.Logger
}

// New creates a new stock service
func New(cfg *config.WidgetsConfig) *Service {
	s := &Service{
		symbols:       cfg.StockSymbols,
		yahooURL:      cfg.YahooQuoteURL,
		marketDataURL: cfg.MarketDataQuoteURL,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		logger:        logging.GetLogger().With(zap.String("component", "stock-service")),
	}
	s.cache = cache.NewTTLCache("stocks", cfg.CacheTTL, FallbackStockData(cfg.StockSymbols), s.refresh)
	return s
}

// FallbackStockData is the static all-zero sentinel set returned when no
// real data is obtainable for any symbol.
func FallbackStockData(symbols []string) []models.StockQuote {
	out := make([]models.StockQuote, len(symbols))
	for i, sym := range symbols {
		out[i] = models.StockQuote{Symbol: sym, Fallback: true}
	}
	return out
}

// GetStockData returns the cached quote set, refreshing it when stale.
// It never fails; total upstream failure degrades to the fallback set.
func (s *Service) GetStockData(ctx context.Context) []models.StockQuote {
	return s.cache.Get(ctx)
}

// Quote returns the cached quote for one symbol, or (zero, false) when the
// symbol is not tracked.
func (s *Service) Quote(ctx context.Context, symbol string) (models.StockQuote, bool) {
	for _, q := range s.GetStockData(ctx) {
		if q.Symbol == symbol {
			return q, true
		}
	}
	return models.StockQuote{}, false
}

// refresh fetches every symbol sequentially through the provider chain.
// It fails only when no symbol could be fetched at all, so the cache keeps
// its last good data through partial outages.
func (s *Service) refresh(ctx context.Context) ([]models.StockQuote, error) {
	ctx, span := telemetry.StartSpan(ctx, "stocks.refresh")
	defer span.End()

	quotes := make([]models.StockQuote, 0, len(s.symbols))
	succeeded := 0

	for _, sym := range s.symbols {
		quote, err := s.fetchYahoo(ctx, sym)
		if err != nil {
			s.logger.Debug("Yahoo fetch failed, trying marketdata", zap.String("symbol", sym), zap.Error(err))
			quote, err = s.fetchMarketData(ctx, sym)
		}
		if err != nil {
			s.logger.Warn("All providers failed for symbol", zap.String("symbol", sym), zap.Error(err))
			quotes = append(quotes, models.StockQuote{Symbol: sym, Fallback: true})
			continue
		}
		succeeded++
		quotes = append(quotes, quote)
	}

	if succeeded == 0 {
		return nil, fmt.Errorf("all stock providers failed for all %d symbols", len(s.symbols))
	}
	return quotes, nil
}

// yahooChartResponse is the subset of the Yahoo chart payload we read.
type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol               string  `json:"symbol"`
				RegularMarketPrice   float64 `json:"regularMarketPrice"`
				PreviousClose        float64 `json:"chartPreviousClose"`
				RegularMarketVolume  int64   `json:"regularMarketVolume"`
				RegularMarketDayHigh float64 `json:"regularMarketDayHigh"`
				RegularMarketDayLow  float64 `json:"regularMarketDayLow"`
			} `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

func (s *Service) fetchYahoo(ctx context.Context, symbol string) (models.StockQuote, error) {
	url := fmt.Sprintf("%s/%s?interval=1d&range=1d", s.yahooURL, symbol)

	var resp yahooChartResponse
	if err := s.getJSON(ctx, url, &resp); err != nil {
		return models.StockQuote{}, err
	}
	if len(resp.Chart.Result) == 0 {
		return models.StockQuote{}, fmt.Errorf("empty chart result for %s", symbol)
	}

	meta := resp.Chart.Result[0].Meta
	change := meta.RegularMarketPrice - meta.PreviousClose
	var changePct float64
	if meta.PreviousClose != 0 {
		changePct = change / meta.PreviousClose * 100
	}

	return models.StockQuote{
		Symbol:        symbol,
		Price:         meta.RegularMarketPrice,
		Change:        change,
		ChangePercent: changePct,
		Volume:        meta.RegularMarketVolume,
		High:          meta.RegularMarketDayHigh,
		Low:           meta.RegularMarketDayLow,
	}, nil
}

// marketDataResponse is the subset of the marketdata quotes payload we read.
type marketDataResponse struct {
	Status    string    `json:"s"`
	Last      []float64 `json:"last"`
	Change    []float64 `json:"change"`
	ChangePct []float64 `json:"changepct"`
	Volume    []int64   `json:"volume"`
}

func (s *Service) fetchMarketData(ctx context.Context, symbol string) (models.StockQuote, error) {
	url := fmt.Sprintf("%s/%s/", s.marketDataURL, symbol)

	var resp marketDataResponse
	if err := s.getJSON(ctx, url, &resp); err != nil {
		return models.StockQuote{}, err
	}
	if resp.Status != "ok" || len(resp.Last) == 0 {
		return models.StockQuote{}, fmt.Errorf("marketdata returned no quote for %s", symbol)
	}

	quote := models.StockQuote{
		Symbol: symbol,
		Price:  resp.Last[0],
	}
	if len(resp.Change) > 0 {
		quote.Change = resp.Change[0]
	}
	if len(resp.ChangePct) > 0 {
		// marketdata reports the fraction, not the percentage
		quote.ChangePercent = resp.ChangePct[0] * 100
	}
	if len(resp.Volume) > 0 {
		quote.Volume = resp.Volume[0]
	}
	return quote, nil
}

func (s *Service) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "tritontory/1.0")

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
