package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/geoportal/internal/models"
)

// ListEmergencyZones возвращает все зоны риска
func (r *GeoportalRepository) ListEmergencyZones(ctx context.Context) ([]*models.EmergencyZone, error) {
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			risk_level,
			emergency_rate
		FROM emergency_zones
		ORDER BY name, id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.EmergencyZone, 0)
	for rows.Next() {
		zone := &models.EmergencyZone{}
		err := rows.Scan(
			&zone.ID,
			&zone.Name,
			&zone.Latitude,
			&zone.Longitude,
			&zone.RiskLevel,
			&zone.EmergencyRate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error emergency zones iteration: %w", err)
	}
	return zones, nil
}
