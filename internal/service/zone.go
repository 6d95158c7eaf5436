package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/geoportal/internal/geo"
	"github.com/shenikar/geoportal/internal/metrics"
	"github.com/shenikar/geoportal/internal/models"
	"github.com/sirupsen/logrus"
)

// hospitalsPerZone - сколько ближайших больниц показывать для зоны
const hospitalsPerZone = 3

func (s *geoportalService) ListZones(ctx context.Context) ([]*models.EmergencyZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geoportal",
		"method":  "ListZones",
	})

	zones, err := s.loadZones(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load emergency zones")
		return nil, err
	}

	log.WithField("count", len(zones)).Debug("Emergency zones listed")
	return zones, nil
}

// NearestZone находит ближайшую к пользователю зону риска
func (s *geoportalService) NearestZone(ctx context.Context, loc *models.UserLocation) (*ZoneMatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geoportal",
		"method":  "NearestZone",
	})

	zones, err := s.loadZones(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load emergency zones")
		return nil, err
	}

	match, ok := nearestZone(loc, zones)
	metrics.NearestQueriesTotal.WithLabelValues("zone", found(ok)).Inc()
	if !ok {
		log.Info("No emergency zone found for location")
		return nil, fmt.Errorf("service: nearest zone: %w", ErrNotFound)
	}

	log.WithFields(logrus.Fields{
		"zone_id":     match.Zone.ID,
		"risk_level":  match.Zone.RiskLevel,
		"distance_km": match.DistanceKm,
	}).Info("Nearest emergency zone found")
	return match, nil
}

// NearestHospitalsToZone возвращает до трех ближайших к центру зоны больниц, по возрастанию расстояния
func (s *geoportalService) NearestHospitalsToZone(ctx context.Context, zoneID uuid.UUID) ([]*CenterMatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geoportal",
		"method":  "NearestHospitalsToZone",
		"zone_id": zoneID,
	})

	zone, err := s.findZone(ctx, zoneID)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve zone")
		return nil, err
	}

	centers, err := s.loadCenters(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load medical centers")
		return nil, err
	}
	hospitals := filterCenters(centers, func(c *models.MedicalCenter) bool { return c.Type == models.CenterHospital })

	ref := zone.Location()
	ranked := geo.NearestN(ref, hospitals, hospitalsPerZone)
	result := make([]*CenterMatch, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, &CenterMatch{
			Center:     r.Item,
			DistanceKm: r.DistanceKm,
			Route:      geo.EstimateRoute(ref, r.Item.Location()),
		})
	}

	log.WithField("count", len(result)).Debug("Nearest hospitals to zone found")
	return result, nil
}

func nearestZone(loc *models.UserLocation, zones []*models.EmergencyZone) (*ZoneMatch, bool) {
	if loc == nil {
		return nil, false
	}
	ref := loc.Location()
	zone, distance, ok := geo.Nearest(&ref, zones)
	if !ok {
		return nil, false
	}
	return &ZoneMatch{Zone: zone, DistanceKm: distance}, true
}
