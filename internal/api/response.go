package api

import "github.com/gin-gonic/gin"

// All /api routes answer with this envelope: a success flag plus either
// data or a user-facing error string.
func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
