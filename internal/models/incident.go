package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentType - тип экстренного вызова
type IncidentType string

const (
	IncidentCardiac     IncidentType = "cardiac"
	IncidentAccident    IncidentType = "accident"
	IncidentRespiratory IncidentType = "respiratory"
	IncidentTrauma      IncidentType = "trauma"
	IncidentMedical     IncidentType = "medical"
	IncidentOther       IncidentType = "other"
)

// Severity - тяжесть инцидента, шкала совпадает с RiskLevel
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// EmergencyIncident - зарегистрированный инцидент в зоне.
// ResponseTime (минуты) задан только для закрытых инцидентов с замером.
type EmergencyIncident struct {
	ID           uuid.UUID    `json:"id"`
	ZoneID       uuid.UUID    `json:"zone_id"`
	IncidentType IncidentType `json:"incident_type"`
	Severity     Severity     `json:"severity"`
	Resolved     bool         `json:"resolved"`
	ResponseTime *float64     `json:"response_time,omitempty"`
	ReportedAt   time.Time    `json:"reported_at"`
}
