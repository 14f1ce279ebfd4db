package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zkortam/tritontory-sub002/internal/analytics"
	"github.com/zkortam/tritontory-sub002/internal/auth"
	"github.com/zkortam/tritontory-sub002/internal/cache"
	"github.com/zkortam/tritontory-sub002/pkg/logging"
)

// Router sets up API routes
type Router struct {
	articles  ArticleStore
	videos    VideoStore
	research  ResearchStore
	legal     LegalStore
	comments  CommentStore
	tickers   TickerStore
	users     UserAdminStore
	search    Searcher
	stocks    StockProvider
	weather   WeatherProvider
	sports    SportsProvider
	auth      *auth.Service
	analytics *analytics.Service
	cache     *cache.Cache
	logger    *zap.Logger
}

// RouterDeps bundles everything the router serves.
type RouterDeps struct {
	Articles  ArticleStore
	Videos    VideoStore
	Research  ResearchStore
	Legal     LegalStore
	Comments  CommentStore
	Tickers   TickerStore
	Users     UserAdminStore
	Search    Searcher
	Stocks    StockProvider
	Weather   WeatherProvider
	Sports    SportsProvider
	Auth      *auth.Service
	Analytics *analytics.Service
	Cache     *cache.Cache
}

// NewRouter creates a new API router
func NewRouter(deps RouterDeps) *Router {
	return &Router{
		articles:  deps.Articles,
		videos:    deps.Videos,
		research:  deps.Research,
		legal:     deps.Legal,
		comments:  deps.Comments,
		tickers:   deps.Tickers,
		users:     deps.Users,
		search:    deps.Search,
		stocks:    deps.Stocks,
		weather:   deps.Weather,
		sports:    deps.Sports,
		auth:      deps.Auth,
		analytics: deps.Analytics,
		cache:     deps.Cache,
		logger:    logging.GetLogger().With(zap.String("component", "api-router")),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	api := engine.Group("/api")

	// Widget proxies. Stateless, unauthenticated, degrade to cached or
	// fallback data instead of failing.
	api.GET("/espn", r.getESPNScores)
	api.GET("/sports", r.getSports)
	api.GET("/stocks", r.getStocks)
	api.GET("/stocks/:symbol", r.getStockSymbol)
	api.GET("/weather/test", r.getWeather)

	// Public content reads
	api.GET("/:type", r.listContent)
	api.GET("/:type/:id", r.getContent)
	api.GET("/search", r.searchContent)
	api.GET("/departments", r.listDepartments)
	api.GET("/tickers", r.listTickers)
	api.GET("/sport-banners", r.listSportBanners)

	// Comments: anyone may submit; moderation is admin-only.
	api.POST("/comments", r.createComment)
	api.GET("/comments", r.listContentComments)

	// Auth
	api.POST("/auth/signup", r.signUp)
	api.POST("/auth/signin", r.signIn)
	api.POST("/auth/signout", r.signOut)
	api.GET("/auth/me", r.auth.RequireAuth(), r.currentUser)

	// Analytics ingest
	api.POST("/analytics/events", r.recordEvent)

	// Admin surface
	admin := api.Group("/admin", r.auth.RequireAuth(), r.auth.RequireAdmin())
	admin.GET("/comments", r.listCommentsByStatus)
	admin.POST("/comments/:id/approve", r.approveComment)
	admin.POST("/comments/:id/reject", r.rejectComment)
	admin.DELETE("/comments/:id", r.deleteComment)
	admin.POST("/:type", r.createContent)
	admin.PUT("/:type/:id", r.updateContent)
	admin.DELETE("/:type/:id", r.deleteContent)
	admin.POST("/tickers", r.createTicker)
	admin.DELETE("/tickers/:id", r.deleteTicker)
	admin.POST("/sport-banners", r.createSportBanner)
	admin.DELETE("/sport-banners/:id", r.deleteSportBanner)
	admin.PUT("/users/:id/role", r.setUserRole)
	admin.GET("/analytics/top", r.topContent)
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "tritontory-api",
	})
}
