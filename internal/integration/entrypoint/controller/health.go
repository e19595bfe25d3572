// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker      func() bool
	sessionHealthChecker func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Sessions  string `json:"sessions"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker, sessionHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker:      dbHealthChecker,
		sessionHealthChecker: sessionHealthChecker,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  probe(h.dbHealthChecker, "connected", "disconnected"),
		Sessions:  probe(h.sessionHealthChecker, "connected", "in-memory"),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func probe(check func() bool, up, down string) string {
	if check != nil && check() {
		return up
	}
	return down
}
