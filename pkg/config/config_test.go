package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Save original env
	originalMongo := os.Getenv("TORY_MONGO_URL")
	originalSecret := os.Getenv("TORY_JWT_SECRET")
	defer func() {
		restoreEnv("TORY_MONGO_URL", originalMongo)
		restoreEnv("TORY_JWT_SECRET", originalSecret)
	}()

	// Test with environment variables
	os.Setenv("TORY_MONGO_URL", "mongodb://test:27017")
	os.Setenv("TORY_JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Mongo.URL != "mongodb://test:27017" {
		t.Errorf("Expected mongo URL from env, got: %s", cfg.Mongo.URL)
	}
	if len(cfg.Widgets.StockSymbols) != 10 {
		t.Errorf("Expected 10 default stock symbols, got: %d", len(cfg.Widgets.StockSymbols))
	}
	if cfg.Widgets.CacheTTL != 5*time.Minute {
		t.Errorf("Expected 5m widget cache TTL, got: %s", cfg.Widgets.CacheTTL)
	}
}

func restoreEnv(key, value string) {
	if value != "" {
		os.Setenv(key, value)
	} else {
		os.Unsetenv(key)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Mongo:  MongoConfig{URL: "mongodb://localhost:27017", Database: "tritontory"},
		Server: ServerConfig{Port: 8080},
		Auth:   AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour},
		Widgets: WidgetsConfig{
			StockSymbols: []string{"AAPL"},
			CacheTTL:     5 * time.Minute,
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Valid config should not error: %v", err)
	}

	// Test invalid port
	cfg.Server.Port = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for invalid port")
	}
	cfg.Server.Port = 8080

	// Test empty symbol list
	cfg.Widgets.StockSymbols = nil
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for empty stock symbol list")
	}
	cfg.Widgets.StockSymbols = []string{"AAPL"}

	// An empty signing secret would let anyone forge admin tokens.
	cfg.Auth.JWTSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for empty jwt_secret")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "plain list", input: "AAPL,MSFT,GOOGL", want: 3},
		{name: "spaces and empties", input: " AAPL, ,MSFT,", want: 2},
		{name: "empty string", input: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitList(tt.input)
			if len(got) != tt.want {
				t.Errorf("splitList(%q) returned %d entries, want %d", tt.input, len(got), tt.want)
			}
		})
	}
}
