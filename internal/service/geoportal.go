package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geoportal/internal/config"
	"github.com/shenikar/geoportal/internal/geo"
	"github.com/shenikar/geoportal/internal/metrics"
	"github.com/shenikar/geoportal/internal/models"
	"github.com/shenikar/geoportal/internal/stats"
	"github.com/shenikar/geoportal/internal/webhook"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// ErrNotFound - запрошенная сущность отсутствует или искать не среди чего
var ErrNotFound = errors.New("not found")

// GeoportalRepository определяет контракт для чтения справочных данных и журнала проверок
type GeoportalRepository interface {
	ListMedicalCenters(ctx context.Context) ([]*models.MedicalCenter, error)
	ListEmergencyZones(ctx context.Context) ([]*models.EmergencyZone, error)
	ListEmergencyIncidents(ctx context.Context) ([]*models.EmergencyIncident, error)
	SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error
	GetLocationCheckStats(ctx context.Context, minutes int) (int, error)

	GetCentersFromCache(ctx context.Context) ([]*models.MedicalCenter, error)
	SetCentersCache(ctx context.Context, centers []*models.MedicalCenter) error
	GetZonesFromCache(ctx context.Context) ([]*models.EmergencyZone, error)
	SetZonesCache(ctx context.Context, zones []*models.EmergencyZone) error
}

// GeoportalService определяет контракт геопортала: поиск ближайших объектов, маршруты, покрытие и статистика
type GeoportalService interface {
	ListCenters(ctx context.Context, centerType models.CenterType) ([]*models.MedicalCenter, error)
	NearestCenter(ctx context.Context, loc *models.UserLocation) (*CenterMatch, error)
	RouteToCenter(ctx context.Context, loc models.UserLocation, centerID uuid.UUID) (*CenterMatch, error)
	CoverageMap(ctx context.Context) (*geojson.FeatureCollection, error)
	ListZones(ctx context.Context) ([]*models.EmergencyZone, error)
	NearestZone(ctx context.Context, loc *models.UserLocation) (*ZoneMatch, error)
	NearestHospitalsToZone(ctx context.Context, zoneID uuid.UUID) ([]*CenterMatch, error)
	ZoneMetrics(ctx context.Context, zoneID uuid.UUID) (*stats.ZoneMetrics, error)
	SystemStats(ctx context.Context) (*stats.SystemStats, error)
	CheckLocation(ctx context.Context, userID string, loc models.UserLocation) (*LocationReport, error)
	ActiveUsers(ctx context.Context) (int, error)
}

// CenterMatch - медицинский центр с расстоянием и оценкой маршрута до него
type CenterMatch struct {
	Center     *models.MedicalCenter
	DistanceKm float64
	Route      geo.RouteEstimate
}

// ZoneMatch - зона риска с расстоянием до нее
type ZoneMatch struct {
	Zone       *models.EmergencyZone
	DistanceKm float64
}

// LocationReport - результат проверки местоположения пользователя
type LocationReport struct {
	NearestZone   *ZoneMatch
	InRiskZone    bool
	NearestCenter *CenterMatch
}

type geoportalService struct {
	repo      GeoportalRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
	now       func() time.Time
}

func NewGeoportalService(repo GeoportalRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.WebhookPublisher) GeoportalService {
	return &geoportalService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		now:       time.Now,
	}
}

// loadCenters читает справочник центров через кеш: промах -> бд -> запись в кеш.
// Ошибки кеша не фатальны.
func (s *geoportalService) loadCenters(ctx context.Context) ([]*models.MedicalCenter, error) {
	log := s.logger.WithField("dataset", "medical_centers")

	cached, err := s.repo.GetCentersFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read medical centers from cache")
	} else if cached != nil {
		metrics.CacheHitsTotal.WithLabelValues("medical_centers").Inc()
		return cached, nil
	}
	metrics.CacheMissesTotal.WithLabelValues("medical_centers").Inc()

	centers, err := s.repo.ListMedicalCenters(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list medical centers: %w", err)
	}
	if err := s.repo.SetCentersCache(ctx, centers); err != nil {
		log.WithError(err).Warn("Failed to cache medical centers")
	}
	return centers, nil
}

// loadZones - то же самое для зон риска
func (s *geoportalService) loadZones(ctx context.Context) ([]*models.EmergencyZone, error) {
	log := s.logger.WithField("dataset", "emergency_zones")

	cached, err := s.repo.GetZonesFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read emergency zones from cache")
	} else if cached != nil {
		metrics.CacheHitsTotal.WithLabelValues("emergency_zones").Inc()
		return cached, nil
	}
	metrics.CacheMissesTotal.WithLabelValues("emergency_zones").Inc()

	zones, err := s.repo.ListEmergencyZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list emergency zones: %w", err)
	}
	if err := s.repo.SetZonesCache(ctx, zones); err != nil {
		log.WithError(err).Warn("Failed to cache emergency zones")
	}
	return zones, nil
}

func (s *geoportalService) findZone(ctx context.Context, zoneID uuid.UUID) (*models.EmergencyZone, error) {
	zones, err := s.loadZones(ctx)
	if err != nil {
		return nil, err
	}
	for _, zone := range zones {
		if zone.ID == zoneID {
			return zone, nil
		}
	}
	return nil, fmt.Errorf("service: zone %s: %w", zoneID, ErrNotFound)
}

func filterCenters(centers []*models.MedicalCenter, keep func(*models.MedicalCenter) bool) []*models.MedicalCenter {
	out := make([]*models.MedicalCenter, 0, len(centers))
	for _, c := range centers {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func found(ok bool) string {
	if ok {
		return "true"
	}
	return "false"
}
