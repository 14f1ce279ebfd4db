package stocks

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zkortam/tritontory-sub002/internal/models"
	"github.com/zkortam/tritontory-sub002/pkg/config"
)

func yahooBody(symbol string, price, prevClose float64) string {
	return fmt.Sprintf(`{"chart":{"result":[{"meta":{"symbol":%q,"regularMarketPrice":%f,"chartPreviousClose":%f}}]}}`,
		symbol, price, prevClose)
}

func newTestService(symbols []string, yahooURL, marketDataURL string) *Service {
	cfg := &config.WidgetsConfig{
		StockSymbols:       symbols,
		CacheTTL:           5 * time.Minute,
		YahooQuoteURL:      yahooURL,
		MarketDataQuoteURL: marketDataURL,
	}
	return New(cfg)
}

func TestGetStockDataAllProvidersFail(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	symbols := []string{"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA", "META", "NVDA", "NFLX", "AMD", "INTC"}
	svc := newTestService(symbols, failing.URL, failing.URL)

	data := svc.GetStockData(context.Background())

	if len(data) != 10 {
		t.Fatalf("GetStockData() returned %d entries, want 10", len(data))
	}
	for _, q := range data {
		if !q.Fallback {
			t.Errorf("quote %s should carry the fallback flag", q.Symbol)
		}
		if q.Price != 0 {
			t.Errorf("fallback quote %s has price %f, want 0", q.Symbol, q.Price)
		}
	}
}

func TestGetStockDataPerSymbolPartialFailure(t *testing.T) {
	yahoo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "TSLA") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		symbol := parts[len(parts)-1]
		fmt.Fprint(w, yahooBody(symbol, 150, 148))
	}))
	defer yahoo.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	svc := newTestService([]string{"AAPL", "TSLA", "MSFT"}, yahoo.URL, failing.URL)

	data := svc.GetStockData(context.Background())
	if len(data) != 3 {
		t.Fatalf("GetStockData() returned %d entries, want 3", len(data))
	}

	bySymbol := map[string]models.StockQuote{}
	for _, q := range data {
		bySymbol[q.Symbol] = q
	}

	if q := bySymbol["TSLA"]; !q.Fallback || q.Price != 0 {
		t.Errorf("TSLA should be a zero-value fallback entry, got %+v", q)
	}
	for _, sym := range []string{"AAPL", "MSFT"} {
		q := bySymbol[sym]
		if q.Fallback {
			t.Errorf("%s should not be a fallback entry", sym)
		}
		if q.Price != 150 {
			t.Errorf("%s price = %f, want 150", sym, q.Price)
		}
	}
}

func TestGetStockDataCachedWithinTTL(t *testing.T) {
	calls := 0
	yahoo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		fmt.Fprint(w, yahooBody(parts[len(parts)-1], 100, 99))
	}))
	defer yahoo.Close()

	svc := newTestService([]string{"AAPL"}, yahoo.URL, yahoo.URL)

	svc.GetStockData(context.Background())
	svc.GetStockData(context.Background())

	if calls != 1 {
		t.Errorf("upstream called %d times within TTL window, want 1", calls)
	}
}

func TestMarketDataFallbackProvider(t *testing.T) {
	yahooDown := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer yahooDown.Close()

	marketData := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"s":"ok","last":[212.5],"change":[1.5],"changepct":[0.0071],"volume":[1000000]}`)
	}))
	defer marketData.Close()

	svc := newTestService([]string{"AAPL"}, yahooDown.URL, marketData.URL)

	quote, ok := svc.Quote(context.Background(), "AAPL")
	if !ok {
		t.Fatal("Quote() did not find tracked symbol AAPL")
	}
	if quote.Fallback {
		t.Error("quote from the secondary provider should not be a fallback entry")
	}
	if quote.Price != 212.5 {
		t.Errorf("quote price = %f, want 212.5", quote.Price)
	}
}
