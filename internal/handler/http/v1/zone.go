package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List emergency zones
// @Description List all emergency-risk zones with their map colors. Requires API key.
// @Tags Zones
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ZoneResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) {
	log := h.logger.WithField("method", "listZones")

	zones, err := h.geoportalService.ListZones(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "emergency zones not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToZoneResponses(zones))
}

// @Summary Find the nearest emergency zone
// @Description Find the emergency zone whose center is closest to the given point. Requires API key.
// @Tags Zones
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No emergency zones"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/nearest [get]
func (h *Handler) nearestZone(c *gin.Context) {
	log := h.logger.WithField("method", "nearestZone")

	var query LocationQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	loc := query.ToUserLocation()
	match, err := h.geoportalService.NearestZone(c.Request.Context(), &loc)
	if err != nil {
		respondError(c, log, err, "no emergency zone found")
		return
	}
	c.JSON(http.StatusOK, ZoneMatchToResponse(match))
}

// @Summary Zone incident metrics
// @Description Active/resolved incidents, average response time and severity distribution of a zone. Requires API key.
// @Tags Zones
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Zone ID"
// @Success 200 {object} ZoneMetricsResponse
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id}/metrics [get]
func (h *Handler) zoneMetrics(c *gin.Context) {
	id, ok := parseID(c, "zone")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "zoneMetrics").WithField("id", id)

	metrics, err := h.geoportalService.ZoneMetrics(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "zone not found")
		return
	}
	c.JSON(http.StatusOK, ZoneMetricsToResponse(id, metrics))
}

// @Summary Nearest hospitals to a zone
// @Description Up to three hospitals closest to the zone center, nearest first. Requires API key.
// @Tags Zones
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Zone ID"
// @Success 200 {array} CenterResponse
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id}/hospitals [get]
func (h *Handler) zoneHospitals(c *gin.Context) {
	id, ok := parseID(c, "zone")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "zoneHospitals").WithField("id", id)

	matches, err := h.geoportalService.NearestHospitalsToZone(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "zone not found")
		return
	}
	c.JSON(http.StatusOK, CenterMatchesToResponses(matches))
}
