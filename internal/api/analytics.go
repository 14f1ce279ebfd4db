package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zkortam/tritontory-sub002/internal/models"
)

type eventRequest struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	ContentType string `json:"contentType"`
	ContentID   string `json:"contentId"`
	SessionID   string `json:"sessionId"`
}

// recordEvent handles POST /api/analytics/events
func (r *Router) recordEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	event := models.AnalyticsEvent{
		Name:        req.Name,
		Path:        req.Path,
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		SessionID:   req.SessionID,
	}
	if err := r.analytics.Record(c.Request.Context(), &event); err != nil {
		r.logger.Warn("Event record failed", zap.Error(err))
		respondError(c, http.StatusBadRequest, "Failed to record event.")
		return
	}
	respondOK(c, http.StatusAccepted, gin.H{"recorded": true})
}

// topContent handles GET /api/admin/analytics/top?days=&limit=
func (r *Router) topContent(c *gin.Context) {
	days, err := strconv.Atoi(c.Query("days"))
	if err != nil || days <= 0 {
		days = 7
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	since := time.Now().UTC().AddDate(0, 0, -days)
	counts, err := r.analytics.TopContent(c.Request.Context(), since, limit)
	if err != nil {
		r.logger.Error("Top content query failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load analytics.")
		return
	}
	respondOK(c, http.StatusOK, counts)
}
