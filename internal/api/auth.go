package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zkortam/tritontory-sub002/internal/auth"
	"github.com/zkortam/tritontory-sub002/internal/models"
)

type credentialsRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// signUp handles POST /api/auth/signup
func (r *Router) signUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, token, err := r.auth.SignUp(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		r.logger.Info("Sign-up rejected", zap.Error(err))
		respondError(c, http.StatusBadRequest, auth.UserMessage(err))
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"user": user, "token": token})
}

// signIn handles POST /api/auth/signin
func (r *Router) signIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, token, err := r.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		r.logger.Info("Sign-in rejected", zap.Error(err))
		respondError(c, http.StatusUnauthorized, auth.UserMessage(err))
		return
	}
	respondOK(c, http.StatusOK, gin.H{"user": user, "token": token})
}

// signOut handles POST /api/auth/signout. Tokens are stateless, so the
// client discards its copy; the endpoint exists for the UI contract.
func (r *Router) signOut(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{"signedOut": true})
}

// setUserRole handles PUT /api/admin/users/:id/role
func (r *Router) setUserRole(c *gin.Context) {
	var req struct {
		Role models.Role `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !req.Role.Valid() {
		respondError(c, http.StatusBadRequest, "Unknown role.")
		return
	}

	id := c.Param("id")
	user, err := r.users.Get(c.Request.Context(), id)
	if err != nil {
		r.logger.Error("User lookup failed", zap.String("id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load user.")
		return
	}
	if user == nil {
		respondError(c, http.StatusNotFound, "User not found.")
		return
	}

	if err := r.users.SetRole(c.Request.Context(), id, req.Role); err != nil {
		r.logger.Error("Role update failed", zap.String("id", id), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update role.")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"id": id, "role": req.Role})
}

// currentUser handles GET /api/auth/me
func (r *Router) currentUser(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "Not signed in.")
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"user":    user,
		"isAdmin": auth.IsAdmin(user.Role),
	})
}
