package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/geoportal/internal/models"
)

// ListMedicalCenters возвращает все медицинские центры в порядке названия
func (r *GeoportalRepository) ListMedicalCenters(ctx context.Context) ([]*models.MedicalCenter, error) {
	query := `
		SELECT
			id,
			name,
			type,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			address,
			phone,
			schedule,
			services,
			emergency
		FROM medical_centers
		ORDER BY name, id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical centers: %w", err)
	}
	defer rows.Close()

	centers := make([]*models.MedicalCenter, 0)
	for rows.Next() {
		center := &models.MedicalCenter{}
		err := rows.Scan(
			&center.ID,
			&center.Name,
			&center.Type,
			&center.Latitude,
			&center.Longitude,
			&center.Address,
			&center.Phone,
			&center.Schedule,
			&center.Services,
			&center.Emergency,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan medical center row: %w", err)
		}
		centers = append(centers, center)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error medical centers iteration: %w", err)
	}
	return centers, nil
}
