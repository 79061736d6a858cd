package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quotienthq/quotient-api/internal/logger"
	"github.com/quotienthq/quotient-api/internal/services"
)

// MonitoringHandler exposes pipeline health endpoints for operators.
type MonitoringHandler struct {
	monitoring *services.MonitoringService
}

// NewMonitoringHandler creates a monitoring handler.
func NewMonitoringHandler(monitoring *services.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{monitoring: monitoring}
}

// GetOverview returns event counts per stage, unresolved dead letters, and
// batch job counts per status.
func (h *MonitoringHandler) GetOverview(c *gin.Context) {
	overview, err := h.monitoring.Overview(c.Request.Context())
	if err != nil {
		logger.Log.Error("Failed to build pipeline overview", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build overview"})
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetPerformance returns per-event-type processing latency against targets.
func (h *MonitoringHandler) GetPerformance(c *gin.Context) {
	report, err := h.monitoring.Performance(c.Request.Context())
	if err != nil {
		logger.Log.Error("Failed to build performance report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build performance report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"handlers": report})
}

// ListRecentEvents returns the newest event log rows.
func (h *MonitoringHandler) ListRecentEvents(c *gin.Context) {
	events, err := h.monitoring.RecentEvents(c.Request.Context(), parseLimit(c, 50))
	if err != nil {
		logger.Log.Error("Failed to list recent events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}
