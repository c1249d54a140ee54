package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sparklewash/services/stats"
	"sparklewash/utils"
)

// StatsHandler exposes the dashboard metrics.
type StatsHandler struct {
	Stats stats.StatsService
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(statsSvc stats.StatsService) *StatsHandler {
	return &StatsHandler{Stats: statsSvc}
}

// DashboardStatsHandler returns the full dashboard metric set.
func (h *StatsHandler) DashboardStatsHandler(c *gin.Context) {
	result, err := h.Stats.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": result})
}

// HealthHandler reports the background health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
}
