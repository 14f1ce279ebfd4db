package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zkortam/tritontory-sub002/internal/cache"
	"github.com/zkortam/tritontory-sub002/internal/models"
	"github.com/zkortam/tritontory-sub002/internal/store"
)

// URL path segment to content collection mapping.
var pathTypes = map[string]models.ContentType{
	"articles": models.ContentArticle,
	"videos":   models.ContentVideo,
	"research": models.ContentResearch,
	"legal":    models.ContentLegal,
}

const listCacheTTL = 60 * time.Second

func listOptionsFromQuery(c *gin.Context) store.ListOptions {
	opts := store.ListOptions{
		Category:     c.Query("category"),
		FeaturedOnly: c.Query("featured") == "true",
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		opts.Limit = limit
	}
	return opts
}

// listContent handles GET /api/:type
func (r *Router) listContent(c *gin.Context) {
	contentType, ok := pathTypes[c.Param("type")]
	if !ok {
		respondError(c, http.StatusNotFound, "Unknown content type.")
		return
	}

	opts := listOptionsFromQuery(c)

	// Serve the rendered list from Redis when present.
	cacheKey := cache.HashKey("list", string(contentType), opts.Category, strconv.FormatBool(opts.FeaturedOnly), strconv.Itoa(opts.Limit))
	if cached, err := r.cache.Get(cacheKey); err == nil {
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	ctx := c.Request.Context()
	var data interface{}
	var err error

	switch contentType {
	case models.ContentArticle:
		data, err = r.articles.List(ctx, opts)
	case models.ContentVideo:
		data, err = r.videos.List(ctx, opts)
	case models.ContentResearch:
		data, err = r.research.List(ctx, opts)
	case models.ContentLegal:
		data, err = r.legal.List(ctx, opts)
	}
	if err != nil {
		r.logger.Error("Content list query failed", zap.String("type", string(contentType)), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load content.")
		return
	}

	body, err := json.Marshal(gin.H{"success": true, "data": data})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to encode content.")
		return
	}
	if err := r.cache.Set(cacheKey, string(body), listCacheTTL); err != nil && err != cache.ErrCacheDisabled {
		r.logger.Warn("Failed to cache content list", zap.Error(err))
	}
	c.Data(http.StatusOK, "application/json", body)
}

// getContent handles GET /api/:type/:id. A missing document is a 404
// envelope, never a 500.
func (r *Router) getContent(c *gin.Context) {
	contentType, ok := pathTypes[c.Param("type")]
	if !ok {
		respondError(c, http.StatusNotFound, "Unknown content type.")
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	var data interface{}
	var err error
	switch contentType {
	case models.ContentArticle:
		var doc *models.Article
		doc, err = r.articles.Get(ctx, id)
		if doc != nil {
			data = doc
		}
	case models.ContentVideo:
		var doc *models.Video
		doc, err = r.videos.Get(ctx, id)
		if doc != nil {
			data = doc
		}
	case models.ContentResearch:
		var doc *models.ResearchArticle
		doc, err = r.research.Get(ctx, id)
		if doc != nil {
			data = doc
		}
	case models.ContentLegal:
		var doc *models.LegalArticle
		doc, err = r.legal.Get(ctx, id)
		if doc != nil {
			data = doc
		}
	}
	if err != nil {
		r.logger.Error("Content fetch failed", zap.String("type", string(contentType)), zap.String("id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load content.")
		return
	}
	if data == nil {
		respondError(c, http.StatusNotFound, "Content not found.")
		return
	}
	respondOK(c, http.StatusOK, data)
}

// listDepartments handles GET /api/departments: the distinct departments
// with published research, for the research section's filter menu.
func (r *Router) listDepartments(c *gin.Context) {
	departments, err := r.research.Departments(c.Request.Context())
	if err != nil {
		r.logger.Error("Department list failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load departments.")
		return
	}
	if departments == nil {
		departments = []string{}
	}
	respondOK(c, http.StatusOK, departments)
}

// createContent handles POST /api/admin/:type
func (r *Router) createContent(c *gin.Context) {
	contentType, ok := pathTypes[c.Param("type")]
	if !ok {
		respondError(c, http.StatusNotFound, "Unknown content type.")
		return
	}

	ctx := c.Request.Context()
	var created interface{}

	switch contentType {
	case models.ContentArticle:
		var doc models.Article
		if err := c.ShouldBindJSON(&doc); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}
		if err := r.articles.Create(ctx, &doc); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		created = doc
	case models.ContentVideo:
		var doc models.Video
		if err := c.ShouldBindJSON(&doc); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}
		if err := r.videos.Create(ctx, &doc); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		created = doc
	case models.ContentResearch:
		var doc models.ResearchArticle
		if err := c.ShouldBindJSON(&doc); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}
		if err := r.research.Create(ctx, &doc); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		created = doc
	case models.ContentLegal:
		var doc models.LegalArticle
		if err := c.ShouldBindJSON(&doc); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}
		if err := r.legal.Create(ctx, &doc); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		created = doc
	}

	respondOK(c, http.StatusCreated, created)
}

// respondUpdateError distinguishes a missing target document from a
// validation failure.
func respondUpdateError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Content not found.")
		return
	}
	respondError(c, http.StatusBadRequest, err.Error())
}

// updateContent handles PUT /api/admin/:type/:id. Last writer wins;
// updating a missing document is a 404 envelope, never a silent success.
func (r *Router) updateContent(c *gin.Context) {
	contentType, ok := pathTypes[c.Param("type")]
	if !ok {
		respondError(c, http.StatusNotFound, "Unknown content type.")
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	var updated interface{}

	switch contentType {
	case models.ContentArticle:
		var doc models.Article
		if err := c.ShouldBindJSON(&doc); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}
		doc.ID = id
		if err := r.articles.Update(ctx, &doc); err != nil {
			respondUpdateError(c, err)
			return
		}
		updated = doc
	case models.ContentVideo:
		var doc models.Video
		if err := c.ShouldBindJSON(&doc); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}
		doc.ID = id
		if err := r.videos.Update(ctx, &doc); err != nil {
			respondUpdateError(c, err)
			return
		}
		updated = doc
	case models.ContentResearch:
		var doc models.ResearchArticle
		if err := c.ShouldBindJSON(&doc); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}
		doc.ID = id
		if err := r.research.Update(ctx, &doc); err != nil {
			respondUpdateError(c, err)
			return
		}
		updated = doc
	case models.ContentLegal:
		var doc models.LegalArticle
		if err := c.ShouldBindJSON(&doc); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}
		doc.ID = id
		if err := r.legal.Update(ctx, &doc); err != nil {
			respondUpdateError(c, err)
			return
		}
		updated = doc
	}

	respondOK(c, http.StatusOK, updated)
}

// deleteContent handles DELETE /api/admin/:type/:id
func (r *Router) deleteContent(c *gin.Context) {
	contentType, ok := pathTypes[c.Param("type")]
	if !ok {
		respondError(c, http.StatusNotFound, "Unknown content type.")
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	var err error
	switch contentType {
	case models.ContentArticle:
		err = r.articles.Delete(ctx, id)
	case models.ContentVideo:
		err = r.videos.Delete(ctx, id)
	case models.ContentResearch:
		err = r.research.Delete(ctx, id)
	case models.ContentLegal:
		err = r.legal.Delete(ctx, id)
	}
	if err != nil {
		r.logger.Error("Content delete failed", zap.String("type", string(contentType)), zap.String("id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete content.")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": id})
}
