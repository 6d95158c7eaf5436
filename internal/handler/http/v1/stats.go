package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/geoportal/internal/classify"
)

// @Summary Get system statistics
// @Description Totals over all zones, incidents and centers. Requires API key.
// @Tags Stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SystemStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) systemStats(c *gin.Context) {
	log := h.logger.WithField("method", "systemStats")

	s, err := h.geoportalService.SystemStats(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "statistics not available")
		return
	}
	c.JSON(http.StatusOK, SystemStatsToResponse(s))
}

// @Summary Get user statistics
// @Description Get the number of distinct users that checked their location within the stats window. Requires API key.
// @Tags Stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats/users [get]
func (h *Handler) activeUsers(c *gin.Context) {
	log := h.logger.WithField("method", "activeUsers")

	userCount, err := h.geoportalService.ActiveUsers(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "statistics not available")
		return
	}
	c.JSON(http.StatusOK, StatsResponse{UserCount: userCount})
}

// @Summary Classify an emergency rate
// @Description Map an emergency rate (per 1000 inhabitants) to a risk level and color. Requires API key.
// @Tags Stats
// @Produce json
// @Security ApiKeyAuth
// @Param rate query number true "Emergency rate per 1000 inhabitants"
// @Success 200 {object} RiskLevelResponse
// @Failure 400 {object} map[string]string "Invalid rate"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /risk-level [get]
func (h *Handler) riskLevel(c *gin.Context) {
	log := h.logger.WithField("method", "riskLevel")

	var query RiskLevelQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	rate := *query.Rate
	level := classify.RiskLevelFromRate(rate)
	c.JSON(http.StatusOK, RiskLevelResponse{
		Rate:          rate,
		RiskLevel:     string(level),
		Color:         classify.RiskLevelColor(level),
		FormattedRate: classify.FormatEmergencyRate(rate),
	})
}
