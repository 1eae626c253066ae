// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController exposes the liveness endpoint.
type HealthController struct {
	pingDB func() bool
}

// NewHealthController creates a health controller backed by a database
// reachability probe.
func NewHealthController(pingDB func() bool) *HealthController {
	return &HealthController{pingDB: pingDB}
}

// Check handles GET /health and reports the state of the API and its
// database connection.
func (h *HealthController) Check(c *gin.Context) {
	database := "disconnected"
	if h.pingDB != nil && h.pingDB() {
		database = "connected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
