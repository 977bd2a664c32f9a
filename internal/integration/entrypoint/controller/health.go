// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DBPinger reports whether the database connection is usable.
type DBPinger func() bool

// HealthController exposes the liveness endpoint used by load balancers
// and the integration test harness to wait for readiness.
type HealthController struct {
	pingDB    DBPinger
	startedAt time.Time
}

func NewHealthController(pingDB DBPinger) *HealthController {
	return &HealthController{
		pingDB:    pingDB,
		startedAt: time.Now().UTC(),
	}
}

// Check handles GET /health.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.pingDB != nil && h.pingDB() {
		dbStatus = "connected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
