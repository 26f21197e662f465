package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Home answers the root path with an empty body
func Home(c *gin.Context) {
	c.Status(http.StatusOK)
}

// HealthCheck handles the health check endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "cosmic-missions",
		"version":   "1.0.0",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
