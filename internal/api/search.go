package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// searchContent handles GET /api/search?q=. No matches is an empty data
// array, not an error.
func (r *Router) searchContent(c *gin.Context) {
	query := c.Query("q")

	results, err := r.search.Search(c.Request.Context(), query)
	if err != nil {
		r.logger.Error("Search failed", zap.String("query", query), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Search failed.")
		return
	}
	respondOK(c, http.StatusOK, results)
}
