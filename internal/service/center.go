package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/geoportal/internal/classify"
	"github.com/shenikar/geoportal/internal/geo"
	"github.com/shenikar/geoportal/internal/metrics"
	"github.com/shenikar/geoportal/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// ListCenters возвращает центры, при непустом centerType - только этого типа
func (s *geoportalService) ListCenters(ctx context.Context, centerType models.CenterType) ([]*models.MedicalCenter, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geoportal",
		"method":  "ListCenters",
		"type":    centerType,
	})

	centers, err := s.loadCenters(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load medical centers")
		return nil, err
	}
	if centerType != "" {
		centers = filterCenters(centers, func(c *models.MedicalCenter) bool { return c.Type == centerType })
	}

	log.WithField("count", len(centers)).Debug("Medical centers listed")
	return centers, nil
}

// NearestCenter находит ближайший к пользователю центр и оценивает маршрут до него
func (s *geoportalService) NearestCenter(ctx context.Context, loc *models.UserLocation) (*CenterMatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geoportal",
		"method":  "NearestCenter",
	})

	centers, err := s.loadCenters(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load medical centers")
		return nil, err
	}

	match, ok := nearestCenter(loc, centers)
	metrics.NearestQueriesTotal.WithLabelValues("center", found(ok)).Inc()
	if !ok {
		log.Info("No medical center found for location")
		return nil, fmt.Errorf("service: nearest center: %w", ErrNotFound)
	}

	log.WithFields(logrus.Fields{
		"center_id":   match.Center.ID,
		"distance_km": match.DistanceKm,
	}).Info("Nearest medical center found")
	return match, nil
}

// RouteToCenter оценивает маршрут от пользователя до выбранного центра
func (s *geoportalService) RouteToCenter(ctx context.Context, loc models.UserLocation, centerID uuid.UUID) (*CenterMatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "geoportal",
		"method":    "RouteToCenter",
		"center_id": centerID,
	})

	centers, err := s.loadCenters(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load medical centers")
		return nil, err
	}

	for _, center := range centers {
		if center.ID == centerID {
			route := geo.EstimateRoute(loc.Location(), center.Location())
			return &CenterMatch{Center: center, DistanceKm: route.DistanceKm, Route: route}, nil
		}
	}

	log.Warn("Route requested to unknown medical center")
	return nil, fmt.Errorf("service: center %s: %w", centerID, ErrNotFound)
}

// CoverageMap строит круги покрытия радиусом 1 км вокруг каждого центра
func (s *geoportalService) CoverageMap(ctx context.Context) (*geojson.FeatureCollection, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geoportal",
		"method":  "CoverageMap",
	})

	centers, err := s.loadCenters(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load medical centers")
		return nil, err
	}

	areas := make([]geo.CoverageArea, 0, len(centers))
	for _, center := range centers {
		areas = append(areas, geo.CoverageArea{
			ID:       center.ID.String(),
			Center:   center.Location(),
			RadiusKm: geo.CoverageRadiusKm,
			Properties: map[string]interface{}{
				"name":      center.Name,
				"type":      string(center.Type),
				"color":     classify.CenterColor(center.Type),
				"emergency": center.Emergency,
			},
		})
	}

	log.WithField("count", len(areas)).Debug("Coverage map built")
	return geo.CoverageCollection(areas), nil
}

func nearestCenter(loc *models.UserLocation, centers []*models.MedicalCenter) (*CenterMatch, bool) {
	if loc == nil {
		return nil, false
	}
	ref := loc.Location()
	center, distance, ok := geo.Nearest(&ref, centers)
	if !ok {
		return nil, false
	}
	return &CenterMatch{
		Center:     center,
		DistanceKm: distance,
		Route:      geo.EstimateRoute(ref, center.Location()),
	}, true
}
