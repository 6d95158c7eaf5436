package service

import (
	"context"
	"fmt"

	"github.com/shenikar/geoportal/internal/geo"
	"github.com/shenikar/geoportal/internal/metrics"
	"github.com/shenikar/geoportal/internal/models"
	"github.com/shenikar/geoportal/internal/webhook"
	"github.com/sirupsen/logrus"
)

// CheckLocation определяет ближайшую зону и центр для пользователя, сохраняет проверку
// и публикует оповещение, если пользователь в пределах AlertRadiusKm от зоны high/critical
func (s *geoportalService) CheckLocation(ctx context.Context, userID string, loc models.UserLocation) (*LocationReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geoportal",
		"method":  "CheckLocation",
		"user_id": userID,
	})

	zones, err := s.loadZones(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load emergency zones")
		return nil, err
	}
	centers, err := s.loadCenters(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load medical centers")
		return nil, err
	}

	report := &LocationReport{}
	if match, ok := nearestZone(&loc, zones); ok {
		report.NearestZone = match
		report.InRiskZone = match.Zone.RiskLevel.IsCritical() && match.DistanceKm <= s.cfg.AlertRadiusKm
	}
	if match, ok := nearestCenter(&loc, centers); ok {
		report.NearestCenter = match
	}

	check := &models.LocationCheck{
		UserID:     userID,
		Latitude:   loc.Latitude,
		Longitude:  loc.Longitude,
		Accuracy:   loc.Accuracy,
		InRiskZone: report.InRiskZone,
	}
	if report.NearestZone != nil {
		zoneID := report.NearestZone.Zone.ID
		check.NearestZoneID = &zoneID
	}
	if err := s.repo.SaveLocationCheck(ctx, check); err != nil {
		log.WithError(err).Error("Failed to save location check")
		return nil, fmt.Errorf("service: could not save location check: %w", err)
	}

	if report.InRiskZone {
		s.publishZoneAlert(ctx, log, check, report.NearestZone, centers)
	}

	log.WithFields(logrus.Fields{
		"check_id":     check.ID,
		"in_risk_zone": report.InRiskZone,
	}).Info("Location checked")
	return report, nil
}

// publishZoneAlert ставит оповещение в очередь. Ошибка публикации не прерывает проверку.
func (s *geoportalService) publishZoneAlert(ctx context.Context, log *logrus.Entry, check *models.LocationCheck, zone *ZoneMatch, centers []*models.MedicalCenter) {
	metrics.ZoneAlertsTotal.WithLabelValues(string(zone.Zone.RiskLevel)).Inc()
	if s.publisher == nil {
		return
	}

	event := webhook.ZoneAlertEvent{
		UserID:         check.UserID,
		Latitude:       check.Latitude,
		Longitude:      check.Longitude,
		Zone:           zone.Zone,
		ZoneDistanceKm: zone.DistanceKm,
		Timestamp:      s.now(),
	}

	ref := geo.Point{Lat: check.Latitude, Lng: check.Longitude}
	emergency := filterCenters(centers, func(c *models.MedicalCenter) bool {
		return c.Type == models.CenterHospital && c.Emergency
	})
	if hospital, _, ok := geo.Nearest(&ref, emergency); ok {
		route := geo.EstimateRoute(ref, hospital.Location())
		event.NearestHospital = hospital
		event.Route = &route
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish zone alert")
		return
	}
	log.WithField("zone_id", zone.Zone.ID).Info("Zone alert published")
}
