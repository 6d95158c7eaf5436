package v1

import (
	"github.com/google/uuid"
	"github.com/shenikar/geoportal/internal/classify"
	"github.com/shenikar/geoportal/internal/geo"
	"github.com/shenikar/geoportal/internal/models"
	"github.com/shenikar/geoportal/internal/service"
	"github.com/shenikar/geoportal/internal/stats"
)

// ToUserLocation преобразует провалидированный query в модель
func (q LocationQuery) ToUserLocation() models.UserLocation {
	return models.UserLocation{Latitude: *q.Latitude, Longitude: *q.Longitude, Accuracy: q.Accuracy}
}

// ToUserLocation преобразует провалидированный запрос в модель
func (r LocationCheckRequest) ToUserLocation() models.UserLocation {
	return models.UserLocation{Latitude: *r.Latitude, Longitude: *r.Longitude, Accuracy: r.Accuracy}
}

func ModelToRouteResponse(route geo.RouteEstimate) *RouteResponse {
	return &RouteResponse{
		DistanceKm:  route.DistanceKm,
		DurationMin: route.DurationMin,
		Distance:    classify.FormatDistance(route.DistanceKm),
		Duration:    classify.FormatDuration(route.DurationMin),
	}
}

// ModelToCenterResponse преобразует центр в DTO, добавляя цвет и иконку маркера
func ModelToCenterResponse(model *models.MedicalCenter) *CenterResponse {
	services := model.Services
	if services == nil {
		services = []string{}
	}
	return &CenterResponse{
		ID:        model.ID,
		Name:      model.Name,
		Type:      string(model.Type),
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Address:   model.Address,
		Phone:     model.Phone,
		Schedule:  model.Schedule,
		Services:  services,
		Emergency: model.Emergency,
		Color:     classify.CenterColor(model.Type),
		Icon:      classify.CenterIcon(model.Type),
	}
}

func ModelsToCenterResponses(models []*models.MedicalCenter) []*CenterResponse {
	responses := make([]*CenterResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToCenterResponse(model)
	}
	return responses
}

// CenterMatchToResponse - центр вместе с расстоянием и маршрутом
func CenterMatchToResponse(match *service.CenterMatch) *CenterResponse {
	resp := ModelToCenterResponse(match.Center)
	distance := match.DistanceKm
	resp.DistanceKm = &distance
	resp.Route = ModelToRouteResponse(match.Route)
	return resp
}

func CenterMatchesToResponses(matches []*service.CenterMatch) []*CenterResponse {
	responses := make([]*CenterResponse, len(matches))
	for i, match := range matches {
		responses[i] = CenterMatchToResponse(match)
	}
	return responses
}

func ModelToZoneResponse(model *models.EmergencyZone) *ZoneResponse {
	return &ZoneResponse{
		ID:            model.ID,
		Name:          model.Name,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		RiskLevel:     string(model.RiskLevel),
		EmergencyRate: model.EmergencyRate,
		FormattedRate: classify.FormatEmergencyRate(model.EmergencyRate),
		Color:         classify.RiskLevelColor(model.RiskLevel),
	}
}

func ModelsToZoneResponses(models []*models.EmergencyZone) []*ZoneResponse {
	responses := make([]*ZoneResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToZoneResponse(model)
	}
	return responses
}

func ZoneMatchToResponse(match *service.ZoneMatch) *ZoneResponse {
	resp := ModelToZoneResponse(match.Zone)
	distance := match.DistanceKm
	resp.DistanceKm = &distance
	return resp
}

func ZoneMetricsToResponse(zoneID uuid.UUID, m *stats.ZoneMetrics) *ZoneMetricsResponse {
	distribution := make(map[string]int, len(m.SeverityDistribution))
	for severity, count := range m.SeverityDistribution {
		distribution[string(severity)] = count
	}
	return &ZoneMetricsResponse{
		ZoneID:               zoneID,
		ActiveIncidents:      m.ActiveIncidents,
		ResolvedIncidents:    m.ResolvedIncidents,
		AverageResponseTime:  m.AverageResponseTime,
		SeverityDistribution: distribution,
	}
}

func SystemStatsToResponse(s *stats.SystemStats) *SystemStatsResponse {
	return &SystemStatsResponse{
		TotalIncidents:         s.TotalIncidents,
		AverageResponseTime:    s.AverageResponseTime,
		CriticalZones:          s.CriticalZones,
		HospitalsWithEmergency: s.HospitalsWithEmergency,
		LastUpdate:             s.LastUpdate,
	}
}

func LocationReportToResponse(report *service.LocationReport) *LocationCheckResponse {
	resp := &LocationCheckResponse{InRiskZone: report.InRiskZone}
	if report.NearestZone != nil {
		resp.NearestZone = ZoneMatchToResponse(report.NearestZone)
	}
	if report.NearestCenter != nil {
		resp.NearestCenter = CenterMatchToResponse(report.NearestCenter)
	}
	return resp
}
