package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/geoportal/internal/models"
	"github.com/shenikar/geoportal/internal/stats"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ZoneMetrics считает метрики инцидентов зоны
func (s *geoportalService) ZoneMetrics(ctx context.Context, zoneID uuid.UUID) (*stats.ZoneMetrics, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geoportal",
		"method":  "ZoneMetrics",
		"zone_id": zoneID,
	})

	zone, err := s.findZone(ctx, zoneID)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve zone")
		return nil, err
	}

	incidents, err := s.repo.ListEmergencyIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load emergency incidents")
		return nil, fmt.Errorf("service: could not list emergency incidents: %w", err)
	}

	result := stats.Zone(zone, incidents)
	return &result, nil
}

// SystemStats собирает сводку по системе; три справочника грузятся параллельно
func (s *geoportalService) SystemStats(ctx context.Context) (*stats.SystemStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geoportal",
		"method":  "SystemStats",
	})

	var (
		zones     []*models.EmergencyZone
		incidents []*models.EmergencyIncident
		centers   []*models.MedicalCenter
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		zones, err = s.loadZones(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		incidents, err = s.repo.ListEmergencyIncidents(gctx)
		if err != nil {
			return fmt.Errorf("service: could not list emergency incidents: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		centers, err = s.loadCenters(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to collect system statistics")
		return nil, err
	}

	result := stats.System(zones, incidents, centers, s.now())
	log.WithFields(logrus.Fields{
		"total_incidents": result.TotalIncidents,
		"critical_zones":  result.CriticalZones,
	}).Debug("System statistics collected")
	return &result, nil
}

// ActiveUsers - число уникальных пользователей, проверявших местоположение за окно статистики
func (s *geoportalService) ActiveUsers(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geoportal",
		"method":  "ActiveUsers",
		"window":  s.cfg.StatsTimeWindowMinutes,
	})

	count, err := s.repo.GetLocationCheckStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get location check stats")
		return 0, fmt.Errorf("service: could not get location check stats: %w", err)
	}
	return count, nil
}
