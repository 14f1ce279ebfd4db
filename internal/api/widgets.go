package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zkortam/tritontory-sub002/internal/models"
)

// Widget proxies never surface upstream failures: the services behind
// them degrade to cached or fallback data, so these handlers only fail on
// a programming error.

// getStocks handles GET /api/stocks
func (r *Router) getStocks(c *gin.Context) {
	respondOK(c, http.StatusOK, r.stocks.GetStockData(c.Request.Context()))
}

// getStockSymbol handles GET /api/stocks/:symbol
func (r *Router) getStockSymbol(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	quote, ok := r.stocks.Quote(c.Request.Context(), symbol)
	if !ok {
		respondError(c, http.StatusNotFound, "Symbol is not tracked.")
		return
	}
	respondOK(c, http.StatusOK, quote)
}

// getWeather handles GET /api/weather/test
func (r *Router) getWeather(c *gin.Context) {
	respondOK(c, http.StatusOK, r.weather.GetWeather(c.Request.Context()))
}

// getESPNScores handles GET /api/espn
func (r *Router) getESPNScores(c *gin.Context) {
	respondOK(c, http.StatusOK, r.sports.GetScores(c.Request.Context()))
}

// getSports handles GET /api/sports: the scoreboard plus any pinned
// sport banners.
func (r *Router) getSports(c *gin.Context) {
	scores := r.sports.GetScores(c.Request.Context())

	banners, err := r.tickers.ListSportBanners(c.Request.Context(), 0)
	if err != nil {
		r.logger.Warn("Sport banner list failed", zap.Error(err))
		banners = nil
	}

	respondOK(c, http.StatusOK, gin.H{
		"scores":  scores,
		"banners": banners,
	})
}

// listTickers handles GET /api/tickers
func (r *Router) listTickers(c *gin.Context) {
	tickers, err := r.tickers.ListTickers(c.Request.Context(), 0)
	if err != nil {
		r.logger.Error("Ticker list failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load tickers.")
		return
	}
	respondOK(c, http.StatusOK, tickers)
}

// tickerRequest binds ticker creation. Active is a pointer so an omitted
// field defaults to visible rather than silently creating a hidden ticker.
type tickerRequest struct {
	Text    string `json:"text"`
	LinkURL string `json:"linkUrl"`
	Active  *bool  `json:"active"`
}

// createTicker handles POST /api/admin/tickers
func (r *Router) createTicker(c *gin.Context) {
	var req tickerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	ticker := models.Ticker{
		Text:    req.Text,
		LinkURL: req.LinkURL,
		Active:  req.Active == nil || *req.Active,
	}
	if err := r.tickers.CreateTicker(c.Request.Context(), &ticker); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	respondOK(c, http.StatusCreated, ticker)
}

// deleteTicker handles DELETE /api/admin/tickers/:id
func (r *Router) deleteTicker(c *gin.Context) {
	id := c.Param("id")
	if err := r.tickers.DeleteTicker(c.Request.Context(), id); err != nil {
		r.logger.Error("Ticker delete failed", zap.String("id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete ticker.")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": id})
}

// sportBannerRequest binds sport banner creation, with the same omitted
// Active handling as tickerRequest.
type sportBannerRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	LinkURL  string `json:"linkUrl"`
	Active   *bool  `json:"active"`
}

// createSportBanner handles POST /api/admin/sport-banners
func (r *Router) createSportBanner(c *gin.Context) {
	var req sportBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	banner := models.SportBanner{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		LinkURL:  req.LinkURL,
		Active:   req.Active == nil || *req.Active,
	}
	if err := r.tickers.CreateSportBanner(c.Request.Context(), &banner); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	respondOK(c, http.StatusCreated, banner)
}

// deleteSportBanner handles DELETE /api/admin/sport-banners/:id
func (r *Router) deleteSportBanner(c *gin.Context) {
	id := c.Param("id")
	if err := r.tickers.DeleteSportBanner(c.Request.Context(), id); err != nil {
		r.logger.Error("Sport banner delete failed", zap.String("id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete sport banner.")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": id})
}

// listSportBanners handles GET /api/sport-banners
func (r *Router) listSportBanners(c *gin.Context) {
	banners, err := r.tickers.ListSportBanners(c.Request.Context(), 0)
	if err != nil {
		r.logger.Error("Sport banner list failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load sport banners.")
		return
	}
	respondOK(c, http.StatusOK, banners)
}
