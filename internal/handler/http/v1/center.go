package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/geoportal/internal/models"
)

// @Summary List medical centers
// @Description List medical centers, optionally filtered by type. Requires API key.
// @Tags Centers
// @Produce json
// @Security ApiKeyAuth
// @Param type query string false "Center type" Enums(hospital, clinic, health_center)
// @Success 200 {array} CenterResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /centers [get]
func (h *Handler) listCenters(c *gin.Context) {
	log := h.logger.WithField("method", "listCenters")

	var query CenterListQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	centers, err := h.geoportalService.ListCenters(c.Request.Context(), models.CenterType(query.Type))
	if err != nil {
		respondError(c, log, err, "medical centers not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToCenterResponses(centers))
}

// @Summary Find the nearest medical center
// @Description Find the medical center closest to the given point and estimate the trip. Requires API key.
// @Tags Centers
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} CenterResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No medical centers"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /centers/nearest [get]
func (h *Handler) nearestCenter(c *gin.Context) {
	log := h.logger.WithField("method", "nearestCenter")

	var query LocationQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	loc := query.ToUserLocation()
	match, err := h.geoportalService.NearestCenter(c.Request.Context(), &loc)
	if err != nil {
		respondError(c, log, err, "no medical center found")
		return
	}
	c.JSON(http.StatusOK, CenterMatchToResponse(match))
}

// @Summary Estimate route to a medical center
// @Description Straight-line route estimate at 40 km/h from the given point to the center. Requires API key.
// @Tags Centers
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Center ID"
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} CenterResponse
// @Failure 400 {object} map[string]string "Invalid center ID or coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Center not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /centers/{id}/route [get]
func (h *Handler) routeToCenter(c *gin.Context) {
	id, ok := parseID(c, "center")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "routeToCenter").WithField("id", id)

	var query LocationQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	match, err := h.geoportalService.RouteToCenter(c.Request.Context(), query.ToUserLocation(), id)
	if err != nil {
		respondError(c, log, err, "medical center not found")
		return
	}
	c.JSON(http.StatusOK, CenterMatchToResponse(match))
}

// @Summary Coverage map
// @Description GeoJSON FeatureCollection of 1 km coverage circles around every medical center. Requires API key.
// @Tags Centers
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /coverage [get]
func (h *Handler) coverageMap(c *gin.Context) {
	log := h.logger.WithField("method", "coverageMap")

	fc, err := h.geoportalService.CoverageMap(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "coverage not available")
		return
	}
	c.JSON(http.StatusOK, fc)
}
