package models

import (
	"github.com/google/uuid"
	"github.com/shenikar/geoportal/internal/geo"
)

// RiskLevel - уровень риска зоны
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// IsCritical - зоны высокого и критического риска считаются критическими
func (r RiskLevel) IsCritical() bool {
	return r == RiskHigh || r == RiskCritical
}

// EmergencyZone - зона риска с уровнем, рассчитанным по частоте вызовов
type EmergencyZone struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	RiskLevel     RiskLevel `json:"risk_level"`
	EmergencyRate float64   `json:"emergency_rate"`
}

func (z EmergencyZone) Location() geo.Point {
	return geo.Point{Lat: z.Latitude, Lng: z.Longitude}
}
