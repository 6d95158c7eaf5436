// Package stats агрегирует метрики инцидентов по зонам и по системе в целом.
// Функции только читают входные срезы; округление выполняется на выходе.
package stats

import (
	"math"
	"time"

	"github.com/shenikar/geoportal/internal/models"
)

// SystemStats - сводная статистика по всем зонам
type SystemStats struct {
	TotalIncidents         int       `json:"total_incidents"`
	AverageResponseTime    float64   `json:"average_response_time"`
	CriticalZones          int       `json:"critical_zones"`
	HospitalsWithEmergency int       `json:"hospitals_with_emergency"`
	LastUpdate             time.Time `json:"last_update"`
}

// ZoneMetrics - метрики инцидентов одной зоны.
// SeverityDistribution разреженная: отсутствующие уровни не попадают в карту.
type ZoneMetrics struct {
	ActiveIncidents      int                     `json:"active_incidents"`
	ResolvedIncidents    int                     `json:"resolved_incidents"`
	AverageResponseTime  float64                 `json:"average_response_time"`
	SeverityDistribution map[models.Severity]int `json:"severity_distribution"`
}

// System считает системную статистику
func System(zones []*models.EmergencyZone, incidents []*models.EmergencyIncident, centers []*models.MedicalCenter, now time.Time) SystemStats {
	result := SystemStats{
		TotalIncidents:      len(incidents),
		AverageResponseTime: round1(averageResponseTime(incidents)),
		LastUpdate:          now,
	}

	for _, zone := range zones {
		if zone.RiskLevel.IsCritical() {
			result.CriticalZones++
		}
	}
	for _, center := range centers {
		if center.Emergency {
			result.HospitalsWithEmergency++
		}
	}
	return result
}

// Zone считает метрики для инцидентов, относящихся к зоне zone
func Zone(zone *models.EmergencyZone, incidents []*models.EmergencyIncident) ZoneMetrics {
	result := ZoneMetrics{SeverityDistribution: make(map[models.Severity]int)}
	if zone == nil {
		return result
	}

	zoneIncidents := make([]*models.EmergencyIncident, 0)
	for _, inc := range incidents {
		if inc.ZoneID != zone.ID {
			continue
		}
		zoneIncidents = append(zoneIncidents, inc)

		if inc.Resolved {
			result.ResolvedIncidents++
		} else {
			result.ActiveIncidents++
		}
		result.SeverityDistribution[inc.Severity]++
	}

	result.AverageResponseTime = round1(averageResponseTime(zoneIncidents))
	return result
}

// averageResponseTime - среднее по закрытым инцидентам с замером, 0 если таких нет
func averageResponseTime(incidents []*models.EmergencyIncident) float64 {
	var sum float64
	var n int
	for _, inc := range incidents {
		if inc.Resolved && inc.ResponseTime != nil {
			sum += *inc.ResponseTime
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
