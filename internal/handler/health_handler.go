package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// Health is a liveness probe
// GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "eMunicipality API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   apiVersion,
	})
}

// Welcome lists the available endpoint groups
// GET /
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome to eMunicipality API",
		"endpoints": gin.H{
			"users":     "/api/users",
			"doctypes":  "/api/doctypes",
			"documents": "/api/documents",
			"health":    "/health",
			"metrics":   "/metrics",
		},
	})
}

// NotFound handles unmatched routes with the standard envelope
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Success: false,
		Message: "Endpoint not found",
	})
}
