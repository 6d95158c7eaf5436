package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	centers := protected.Group("/centers")
	{
		centers.GET("", h.listCenters)
		centers.GET("/nearest", h.nearestCenter)
		centers.GET("/:id/route", h.routeToCenter)
	}
	protected.GET("/coverage", h.coverageMap)

	zones := protected.Group("/zones")
	{
		zones.GET("", h.listZones)
		zones.GET("/nearest", h.nearestZone)
		zones.GET("/:id/metrics", h.zoneMetrics)
		zones.GET("/:id/hospitals", h.zoneHospitals)
	}

	stats := protected.Group("/stats")
	{
		stats.GET("", h.systemStats)
		stats.GET("/users", h.activeUsers)
	}
	protected.GET("/risk-level", h.riskLevel)

	// Маршрут для проверки местоположения
	protected.POST("/location/check", h.checkLocation)

	protected.POST("/assistant/messages", h.assistantMessage)
}
