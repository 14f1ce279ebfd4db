package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zkortam/tritontory-sub002/internal/analytics"
	"github.com/zkortam/tritontory-sub002/internal/api"
	"github.com/zkortam/tritontory-sub002/internal/auth"
	"github.com/zkortam/tritontory-sub002/internal/cache"
	"github.com/zkortam/tritontory-sub002/internal/search"
	"github.com/zkortam/tritontory-sub002/internal/store"
	"github.com/zkortam/tritontory-sub002/internal/widgets/sports"
	"github.com/zkortam/tritontory-sub002/internal/widgets/stocks"
	"github.com/zkortam/tritontory-sub002/internal/widgets/weather"
	"github.com/zkortam/tritontory-sub002/pkg/config"
	"github.com/zkortam/tritontory-sub002/pkg/logging"
	"github.com/zkortam/tritontory-sub002/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger()
	logger.Info("Starting Triton Tory API Server")

	// Initialize telemetry
	telemetryShutdown, err := telemetry.Init(&cfg.Telemetry)
	if err != nil {
		logger.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer telemetryShutdown()

	// Connect to the document store
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := store.New(ctx, &cfg.Mongo)
	cancel()
	if err != nil {
		logger.Fatal("Failed to connect to document store", zap.Error(err))
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := db.Close(closeCtx); err != nil {
			logger.Error("Failed to close document store", zap.Error(err))
		}
	}()

	// Optional Redis response cache
	responseCache, err := cache.New(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer responseCache.Close()

	// Optional analytics database
	analyticsSvc, err := analytics.New(&cfg.Postgres, cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to connect to analytics database", zap.Error(err))
	}
	defer analyticsSvc.Close()

	// Collection services
	articles := store.NewArticleService(db)
	videos := store.NewVideoService(db)
	research := store.NewResearchService(db)
	legal := store.NewLegalService(db)
	comments := store.NewCommentService(db)
	users := store.NewUserService(db)
	tickers := store.NewTickerService(db)

	authSvc := auth.NewService(users, &cfg.Auth)
	searcher := search.NewAggregator(articles, videos, research, legal)

	// Widget feeds
	stockSvc := stocks.New(&cfg.Widgets)
	weatherSvc := weather.New(&cfg.Widgets)
	sportsSvc := sports.New(&cfg.Widgets)

	// Create Gin router
	if cfg.Logging.Level == "DEBUG" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	router := api.NewRouter(api.RouterDeps{
		Articles:  articles,
		Videos:    videos,
		Research:  research,
		Legal:     legal,
		Comments:  comments,
		Tickers:   tickers,
		Users:     users,
		Search:    searcher,
		Stocks:    stockSvc,
		Weather:   weatherSvc,
		Sports:    sportsSvc,
		Auth:      authSvc,
		Analytics: analyticsSvc,
		Cache:     responseCache,
	})
	router.SetupRoutes(engine)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: engine,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server starting", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
