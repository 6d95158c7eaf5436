package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/geoportal/internal/models"
)

// ListEmergencyIncidents возвращает инциденты, новые первыми
func (r *GeoportalRepository) ListEmergencyIncidents(ctx context.Context) ([]*models.EmergencyIncident, error) {
	query := `
		SELECT
			id,
			zone_id,
			incident_type,
			severity,
			resolved,
			response_time,
			reported_at
		FROM emergency_incidents
		ORDER BY reported_at DESC, id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.EmergencyIncident, 0)
	for rows.Next() {
		incident := &models.EmergencyIncident{}
		err := rows.Scan(
			&incident.ID,
			&incident.ZoneID,
			&incident.IncidentType,
			&incident.Severity,
			&incident.Resolved,
			&incident.ResponseTime,
			&incident.ReportedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error emergency incidents iteration: %w", err)
	}
	return incidents, nil
}
