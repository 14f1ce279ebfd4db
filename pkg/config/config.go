package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Mongo     MongoConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Server    ServerConfig
	Auth      AuthConfig
	Widgets   WidgetsConfig
	Logging   LoggingConfig
	Telemetry TelemetryConfig
}

// MongoConfig holds document store configuration
type MongoConfig struct {
	URL      string
	Database string
}

// PostgresConfig holds the analytics database configuration.
// Analytics is disabled when URL is empty.
type PostgresConfig struct {
	URL     string
	Enabled bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL     string
	Enabled bool
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
	Host string
}

// AuthConfig holds token signing configuration
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	Issuer    string
}

// WidgetsConfig holds third-party widget feed configuration
type WidgetsConfig struct {
	StockSymbols       []string
	CacheTTL           time.Duration
	YahooQuoteURL      string
	MarketDataQuoteURL string
	WeatherBaseURL     string
	WeatherLat         float64
	WeatherLon         float64
	ESPNScoreboardURL  string
	SportsBackupURL    string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// TelemetryConfig holds observability configuration
type TelemetryConfig struct {
	Enabled           bool
	JaegerURL         string
	PrometheusEnabled bool
	PrometheusPort    int
	ServiceName       string
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	// Set defaults
	setDefaults()

	// Load from environment
	viper.SetEnvPrefix("TORY")
	viper.AutomaticEnv()

	// Load from config file if exists
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.tritontory")
	viper.AddConfigPath("/etc/tritontory")

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found; this is OK if we have env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Mongo: MongoConfig{
			URL:      getString("mongo_url", "mongodb://localhost:27017"),
			Database: getString("mongo_database", "tritontory"),
		},
		Postgres: PostgresConfig{
			URL:     getString("postgres_url", ""),
			Enabled: getString("postgres_url", "") != "",
		},
		Redis: RedisConfig{
			URL:     getString("redis_url", ""),
			Enabled: getString("redis_url", "") != "",
		},
		Server: ServerConfig{
			Port: getInt("http_server_port", 8080),
			Host: getString("http_server_host", "0.0.0.0"),
		},
		Auth: AuthConfig{
			JWTSecret: getString("jwt_secret", ""),
			TokenTTL:  getDuration("token_ttl", 24*time.Hour),
			Issuer:    getString("token_issuer", "tritontory"),
		},
		Widgets: WidgetsConfig{
			StockSymbols:       splitList(getString("stock_symbols", defaultStockSymbols)),
			CacheTTL:           getDuration("widget_cache_ttl", 5*time.Minute),
			YahooQuoteURL:      getString("yahoo_quote_url", "https://query1.finance.yahoo.com/v8/finance/chart"),
			MarketDataQuoteURL: getString("marketdata_quote_url", "https://api.marketdata.app/v1/stocks/quotes"),
			WeatherBaseURL:     getString("weather_base_url", "https://api.weather.gov"),
			WeatherLat:         getFloat("weather_lat", 32.8801),
			WeatherLon:         getFloat("weather_lon", -117.2340),
			ESPNScoreboardURL:  getString("espn_scoreboard_url", "https://site.api.espn.com/apis/site/v2/sports"),
			SportsBackupURL:    getString("sports_backup_url", ""),
		},
		Logging: LoggingConfig{
			Level:  getString("log_level", "INFO"),
			Format: getString("log_format", "json"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           getBool("telemetry_enabled", false),
			JaegerURL:         getString("jaeger_url", ""),
			PrometheusEnabled: getBool("prometheus_enabled", true),
			PrometheusPort:    getInt("prometheus_port", 9090),
			ServiceName:       getString("service_name", "tritontory"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// The ten symbols shown on the public stock ticker.
const defaultStockSymbols = "AAPL,GOOGL,MSFT,AMZN,TSLA,META,NVDA,NFLX,AMD,INTC"

func setDefaults() {
	viper.SetDefault("mongo_url", "mongodb://localhost:27017")
	viper.SetDefault("mongo_database", "tritontory")
	viper.SetDefault("http_server_port", 8080)
	viper.SetDefault("http_server_host", "0.0.0.0")
	viper.SetDefault("log_level", "INFO")
	viper.SetDefault("log_format", "json")
	viper.SetDefault("token_ttl", "24h")
	viper.SetDefault("token_issuer", "tritontory")
	viper.SetDefault("stock_symbols", defaultStockSymbols)
	viper.SetDefault("widget_cache_ttl", "5m")
	viper.SetDefault("telemetry_enabled", false)
	viper.SetDefault("prometheus_enabled", true)
	viper.SetDefault("prometheus_port", 9090)
	viper.SetDefault("service_name", "tritontory")
}

func getString(key, defaultValue string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	// Also check environment variable directly
	if val := os.Getenv("TORY_" + toEnvKey(key)); val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	if val := os.Getenv("TORY_" + toEnvKey(key)); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	if val := os.Getenv("TORY_" + toEnvKey(key)); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if viper.IsSet(key) {
		return viper.GetFloat64(key)
	}
	if val := os.Getenv("TORY_" + toEnvKey(key)); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	if val := os.Getenv("TORY_" + toEnvKey(key)); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func toEnvKey(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Mongo.URL == "" {
		return fmt.Errorf("mongo_url is required")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo_database is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("http_server_port must be between 1 and 65535")
	}
	if len(c.Widgets.StockSymbols) == 0 {
		return fmt.Errorf("stock_symbols must name at least one symbol")
	}
	if c.Widgets.CacheTTL <= 0 {
		return fmt.Errorf("widget_cache_ttl must be positive")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive")
	}
	return nil
}
