package v1

import (
	"time"

	"github.com/google/uuid"
)

// LocationQuery - координаты пользователя в query-параметрах
// @Description Координаты пользователя
type LocationQuery struct {
	Latitude  *float64 `form:"lat" validate:"required,latitude"`
	Longitude *float64 `form:"lng" validate:"required,longitude"`
	Accuracy  float64  `form:"accuracy" validate:"omitempty,gte=0"`
}

// CenterListQuery - фильтр списка медицинских центров
type CenterListQuery struct {
	Type string `form:"type" validate:"omitempty,oneof=hospital clinic health_center"`
}

// RiskLevelQuery - показатель обращений для классификации
type RiskLevelQuery struct {
	Rate *float64 `form:"rate" validate:"required,gte=0"`
}

// LocationCheckRequest DTO для проверки координат
// @Description DTO для проверки координат
type LocationCheckRequest struct {
	UserID    string   `json:"user_id" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Accuracy  float64  `json:"accuracy" validate:"omitempty,gte=0"`
}

// AssistantMessageRequest DTO для сообщения ассистенту
// @Description DTO для сообщения ассистенту
type AssistantMessageRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

// RouteResponse DTO оценки маршрута
// @Description Оценка маршрута по прямой при средней скорости 40 км/ч
type RouteResponse struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
	Distance    string  `json:"distance"`
	Duration    string  `json:"duration"`
}

// CenterResponse DTO медицинского центра
// @Description DTO медицинского центра
type CenterResponse struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	Address    string         `json:"address"`
	Phone      string         `json:"phone"`
	Schedule   string         `json:"schedule"`
	Services   []string       `json:"services"`
	Emergency  bool           `json:"emergency"`
	Color      string         `json:"color"`
	Icon       string         `json:"icon"`
	DistanceKm *float64       `json:"distance_km,omitempty"`
	Route      *RouteResponse `json:"route,omitempty"`
}

// ZoneResponse DTO зоны риска
// @Description DTO зоны риска
type ZoneResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	RiskLevel     string    `json:"risk_level"`
	EmergencyRate float64   `json:"emergency_rate"`
	FormattedRate string    `json:"formatted_rate"`
	Color         string    `json:"color"`
	DistanceKm    *float64  `json:"distance_km,omitempty"`
}

// ZoneMetricsResponse DTO метрик зоны
// @Description DTO метрик инцидентов зоны
type ZoneMetricsResponse struct {
	ZoneID               uuid.UUID      `json:"zone_id"`
	ActiveIncidents      int            `json:"active_incidents"`
	ResolvedIncidents    int            `json:"resolved_incidents"`
	AverageResponseTime  float64        `json:"average_response_time"`
	SeverityDistribution map[string]int `json:"severity_distribution"`
}

// SystemStatsResponse DTO сводной статистики
// @Description DTO сводной статистики
type SystemStatsResponse struct {
	TotalIncidents         int       `json:"total_incidents"`
	AverageResponseTime    float64   `json:"average_response_time"`
	CriticalZones          int       `json:"critical_zones"`
	HospitalsWithEmergency int       `json:"hospitals_with_emergency"`
	LastUpdate             time.Time `json:"last_update"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount int `json:"user_count"`
}

// RiskLevelResponse DTO классификации показателя обращений
// @Description DTO классификации показателя обращений
type RiskLevelResponse struct {
	Rate          float64 `json:"rate"`
	RiskLevel     string  `json:"risk_level"`
	Color         string  `json:"color"`
	FormattedRate string  `json:"formatted_rate"`
}

// LocationCheckResponse DTO результата проверки координат
// @Description DTO результата проверки координат
type LocationCheckResponse struct {
	InRiskZone    bool            `json:"in_risk_zone"`
	NearestZone   *ZoneResponse   `json:"nearest_zone,omitempty"`
	NearestCenter *CenterResponse `json:"nearest_center,omitempty"`
}

// AssistantReplyResponse DTO ответа ассистента
// @Description DTO ответа ассистента
type AssistantReplyResponse struct {
	Rule  string `json:"rule"`
	Reply string `json:"reply"`
}
