package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zkortam/tritontory-sub002/internal/models"
	"github.com/zkortam/tritontory-sub002/internal/store"
)

type createCommentRequest struct {
	ContentType models.ContentType `json:"contentType"`
	ContentID   string             `json:"contentId"`
	AuthorName  string             `json:"authorName"`
	Body        string             `json:"body"`
}

// createComment handles POST /api/comments. New comments always enter the
// moderation queue as pending.
func (r *Router) createComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	comment := models.Comment{
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		AuthorName:  req.AuthorName,
		Body:        req.Body,
	}
	if err := r.comments.Create(c.Request.Context(), &comment); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	respondOK(c, http.StatusCreated, comment)
}

// listContentComments handles GET /api/comments?type=&id= and returns only
// approved comments for one content record.
func (r *Router) listContentComments(c *gin.Context) {
	contentType := models.ContentType(c.Query("type"))
	contentID := c.Query("id")
	if !contentType.Valid() || contentID == "" {
		respondError(c, http.StatusBadRequest, "type and id query parameters are required.")
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	comments, err := r.comments.ListForContent(c.Request.Context(), contentType, contentID, limit)
	if err != nil {
		r.logger.Error("Comment list failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load comments.")
		return
	}
	respondOK(c, http.StatusOK, comments)
}

// listCommentsByStatus handles GET /api/admin/comments?status=
func (r *Router) listCommentsByStatus(c *gin.Context) {
	status := models.CommentStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		respondError(c, http.StatusBadRequest, "Unknown comment status.")
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	comments, err := r.comments.List(c.Request.Context(), status, limit)
	if err != nil {
		r.logger.Error("Moderation list failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load comments.")
		return
	}
	respondOK(c, http.StatusOK, comments)
}

// approveComment handles POST /api/admin/comments/:id/approve
func (r *Router) approveComment(c *gin.Context) {
	r.moderateComment(c, models.CommentApproved)
}

// rejectComment handles POST /api/admin/comments/:id/reject
func (r *Router) rejectComment(c *gin.Context) {
	r.moderateComment(c, models.CommentRejected)
}

func (r *Router) moderateComment(c *gin.Context, status models.CommentStatus) {
	id := c.Param("id")
	err := r.comments.SetStatus(c.Request.Context(), id, status)
	switch {
	case errors.Is(err, store.ErrCommentNotFound):
		respondError(c, http.StatusNotFound, "Comment not found.")
	case errors.Is(err, store.ErrTerminalStatus):
		respondError(c, http.StatusConflict, "Comment has already been moderated.")
	case err != nil:
		r.logger.Error("Comment moderation failed", zap.String("id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update comment.")
	default:
		respondOK(c, http.StatusOK, gin.H{"id": id, "status": status})
	}
}

// deleteComment handles DELETE /api/admin/comments/:id
func (r *Router) deleteComment(c *gin.Context) {
	id := c.Param("id")
	if err := r.comments.Delete(c.Request.Context(), id); err != nil {
		r.logger.Error("Comment delete failed", zap.String("id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete comment.")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": id})
}
