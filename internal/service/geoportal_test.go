package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geoportal/internal/config"
	"github.com/shenikar/geoportal/internal/models"
	"github.com/shenikar/geoportal/internal/service"
	"github.com/shenikar/geoportal/internal/service/mocks"
	"github.com/shenikar/geoportal/internal/webhook"
	webhook_mocks "github.com/shenikar/geoportal/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestGeoportalService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestGeoportalService(t *testing.T) (service.GeoportalService, *mocks.MockGeoportalRepository, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockGeoportalRepository(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		StatsTimeWindowMinutes: 60,
		AlertRadiusKm:          1,
	}

	return service.NewGeoportalService(repoMock, logger, cfg, webhookMock), repoMock, webhookMock
}

// Набор данных вокруг центра Сан-Сальвадора
var (
	rosales = &models.MedicalCenter{
		ID: uuid.New(), Name: "Hospital Rosales", Type: models.CenterHospital,
		Latitude: 13.7004, Longitude: -89.2042, Emergency: true,
	}
	escalon = &models.MedicalCenter{
		ID: uuid.New(), Name: "Clínica Escalón", Type: models.CenterClinic,
		Latitude: 13.7069, Longitude: -89.2372,
	}
	bloom = &models.MedicalCenter{
		ID: uuid.New(), Name: "Hospital Bloom", Type: models.CenterHospital,
		Latitude: 13.7100, Longitude: -89.2000,
	}
	zacamil = &models.MedicalCenter{
		ID: uuid.New(), Name: "Unidad de Salud Zacamil", Type: models.CenterHealthCenter,
		Latitude: 13.7350, Longitude: -89.2100,
	}

	centroHistorico = &models.EmergencyZone{
		ID: uuid.New(), Name: "Centro Histórico", Latitude: 13.6989, Longitude: -89.1914,
		RiskLevel: models.RiskCritical, EmergencyRate: 42.5,
	}
	sanBenito = &models.EmergencyZone{
		ID: uuid.New(), Name: "San Benito", Latitude: 13.6930, Longitude: -89.2450,
		RiskLevel: models.RiskLow, EmergencyRate: 12.0,
	}
)

func testCenters() []*models.MedicalCenter {
	return []*models.MedicalCenter{rosales, escalon, bloom, zacamil}
}

func testZones() []*models.EmergencyZone {
	return []*models.EmergencyZone{centroHistorico, sanBenito}
}

func floatPtr(v float64) *float64 { return &v }

func TestListCenters_FromCacheFilteredByType(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetCentersFromCache(ctx).Return(testCenters(), nil).Times(1)
	repoMock.EXPECT().ListMedicalCenters(gomock.Any()).Times(0)

	// Действие
	centers, err := svc.ListCenters(ctx, models.CenterHospital)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []*models.MedicalCenter{rosales, bloom}, centers)
}

func TestListCenters_CacheMissLoadsFromDB(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().GetCentersFromCache(ctx).Return(nil, nil).Times(1)
	// 2. Чтение из БД
	repoMock.EXPECT().ListMedicalCenters(ctx).Return(testCenters(), nil).Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().SetCentersCache(ctx, testCenters()).Return(nil).Times(1)

	// Действие
	centers, err := svc.ListCenters(ctx, "")

	// Проверки
	require.NoError(t, err)
	assert.Len(t, centers, 4)
}

func TestListCenters_CacheErrorFallsBackToDB(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetCentersFromCache(ctx).Return(nil, errors.New("redis down")).Times(1)
	repoMock.EXPECT().ListMedicalCenters(ctx).Return(testCenters(), nil).Times(1)
	repoMock.EXPECT().SetCentersCache(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	centers, err := svc.ListCenters(ctx, models.CenterClinic)

	require.NoError(t, err)
	assert.Equal(t, []*models.MedicalCenter{escalon}, centers)
}

func TestListCenters_DBError(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetCentersFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListMedicalCenters(ctx).Return(nil, errors.New("db error")).Times(1)
	repoMock.EXPECT().SetCentersCache(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.ListCenters(ctx, "")

	require.Error(t, err)
	assert.ErrorContains(t, err, "db error")
}

func TestNearestCenter_Success(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetCentersFromCache(ctx).Return(testCenters(), nil).Times(1)

	match, err := svc.NearestCenter(ctx, &models.UserLocation{Latitude: 13.7010, Longitude: -89.2050})

	require.NoError(t, err)
	assert.Equal(t, rosales, match.Center)
	assert.Less(t, match.DistanceKm, 0.2)
	assert.Equal(t, match.DistanceKm, match.Route.DistanceKm)
	assert.InDelta(t, match.DistanceKm/40*60, match.Route.DurationMin, 1e-9)
}

func TestNearestCenter_NoCenters(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetCentersFromCache(ctx).Return([]*models.MedicalCenter{}, nil).Times(1)

	match, err := svc.NearestCenter(ctx, &models.UserLocation{Latitude: 13.7, Longitude: -89.2})

	assert.Nil(t, match)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestNearestCenter_NoLocation(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetCentersFromCache(ctx).Return(testCenters(), nil).Times(1)

	_, err := svc.NearestCenter(ctx, nil)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestRouteToCenter(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()
	loc := models.UserLocation{Latitude: 13.6929, Longitude: -89.2182}

	repoMock.EXPECT().GetCentersFromCache(ctx).Return(testCenters(), nil).Times(2)

	match, err := svc.RouteToCenter(ctx, loc, rosales.ID)
	require.NoError(t, err)
	assert.Equal(t, rosales, match.Center)
	assert.InDelta(t, 1.7, match.Route.DistanceKm, 0.2)

	_, err = svc.RouteToCenter(ctx, loc, uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCoverageMap(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetCentersFromCache(ctx).Return(testCenters(), nil).Times(1)

	fc, err := svc.CoverageMap(ctx)

	require.NoError(t, err)
	require.Len(t, fc.Features, 4)
	first := fc.Features[0]
	assert.Equal(t, rosales.ID.String(), first.ID)
	assert.Equal(t, "#EF4444", first.Properties["color"])
	assert.Equal(t, 1.0, first.Properties["radius_km"])
	assert.Equal(t, true, first.Properties["emergency"])
}

func TestListZones(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetZonesFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListEmergencyZones(ctx).Return(testZones(), nil).Times(1)
	repoMock.EXPECT().SetZonesCache(ctx, testZones()).Return(nil).Times(1)

	zones, err := svc.ListZones(ctx)

	require.NoError(t, err)
	assert.Equal(t, testZones(), zones)
}

func TestNearestZone(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetZonesFromCache(ctx).Return(testZones(), nil).Times(1)

	match, err := svc.NearestZone(ctx, &models.UserLocation{Latitude: 13.6940, Longitude: -89.2400})

	require.NoError(t, err)
	assert.Equal(t, sanBenito, match.Zone)
	assert.Less(t, match.DistanceKm, 1.0)
}

func TestNearestZone_NoZones(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetZonesFromCache(ctx).Return([]*models.EmergencyZone{}, nil).Times(1)

	_, err := svc.NearestZone(ctx, &models.UserLocation{Latitude: 13.7, Longitude: -89.2})

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestNearestHospitalsToZone(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetZonesFromCache(ctx).Return(testZones(), nil).Times(1)
	repoMock.EXPECT().GetCentersFromCache(ctx).Return(testCenters(), nil).Times(1)

	matches, err := svc.NearestHospitalsToZone(ctx, centroHistorico.ID)

	require.NoError(t, err)
	// Только больницы, по возрастанию расстояния
	require.Len(t, matches, 2)
	assert.Equal(t, rosales, matches[0].Center)
	assert.Equal(t, bloom, matches[1].Center)
	assert.LessOrEqual(t, matches[0].DistanceKm, matches[1].DistanceKm)
}

func TestNearestHospitalsToZone_UnknownZone(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetZonesFromCache(ctx).Return(testZones(), nil).Times(1)
	repoMock.EXPECT().GetCentersFromCache(gomock.Any()).Times(0)

	_, err := svc.NearestHospitalsToZone(ctx, uuid.New())

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestZoneMetrics(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()
	incidents := []*models.EmergencyIncident{
		{ID: uuid.New(), ZoneID: centroHistorico.ID, Severity: models.SeverityHigh, Resolved: true, ResponseTime: floatPtr(12)},
		{ID: uuid.New(), ZoneID: centroHistorico.ID, Severity: models.SeverityHigh, Resolved: false},
		{ID: uuid.New(), ZoneID: centroHistorico.ID, Severity: models.SeverityLow, Resolved: true, ResponseTime: floatPtr(18)},
		{ID: uuid.New(), ZoneID: sanBenito.ID, Severity: models.SeverityCritical, Resolved: true, ResponseTime: floatPtr(99)},
	}

	repoMock.EXPECT().GetZonesFromCache(ctx).Return(testZones(), nil).Times(1)
	repoMock.EXPECT().ListEmergencyIncidents(ctx).Return(incidents, nil).Times(1)

	m, err := svc.ZoneMetrics(ctx, centroHistorico.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, m.ActiveIncidents)
	assert.Equal(t, 2, m.ResolvedIncidents)
	assert.Equal(t, 15.0, m.AverageResponseTime)
	assert.Equal(t, map[models.Severity]int{models.SeverityHigh: 2, models.SeverityLow: 1}, m.SeverityDistribution)
}

func TestZoneMetrics_UnknownZone(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetZonesFromCache(ctx).Return(testZones(), nil).Times(1)
	repoMock.EXPECT().ListEmergencyIncidents(gomock.Any()).Times(0)

	_, err := svc.ZoneMetrics(ctx, uuid.New())

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSystemStats(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()
	incidents := []*models.EmergencyIncident{
		{ZoneID: centroHistorico.ID, Resolved: true, ResponseTime: floatPtr(10)},
		{ZoneID: sanBenito.ID, Resolved: true, ResponseTime: floatPtr(10.6)},
		{ZoneID: sanBenito.ID, Resolved: false},
	}

	// Справочники грузятся в отдельных горутинах с производным контекстом
	repoMock.EXPECT().GetZonesFromCache(gomock.Any()).Return(testZones(), nil).Times(1)
	repoMock.EXPECT().GetCentersFromCache(gomock.Any()).Return(testCenters(), nil).Times(1)
	repoMock.EXPECT().ListEmergencyIncidents(gomock.Any()).Return(incidents, nil).Times(1)

	before := time.Now()
	s, err := svc.SystemStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, s.TotalIncidents)
	assert.Equal(t, 10.3, s.AverageResponseTime)
	assert.Equal(t, 1, s.CriticalZones)
	assert.Equal(t, 1, s.HospitalsWithEmergency)
	assert.WithinDuration(t, before, s.LastUpdate, time.Minute)
}

func TestSystemStats_IncidentsError(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetZonesFromCache(gomock.Any()).Return(testZones(), nil).AnyTimes()
	repoMock.EXPECT().GetCentersFromCache(gomock.Any()).Return(testCenters(), nil).AnyTimes()
	repoMock.EXPECT().ListEmergencyIncidents(gomock.Any()).Return(nil, errors.New("db error")).Times(1)

	s, err := svc.SystemStats(ctx)

	assert.Nil(t, s)
	assert.ErrorContains(t, err, "db error")
}

func TestCheckLocation_InRiskZone_PublishesAlert(t *testing.T) {
	// Подготовка
	svc, repoMock, webhookMock := newTestGeoportalService(t)
	ctx := context.Background()
	loc := models.UserLocation{Latitude: 13.6995, Longitude: -89.1920, Accuracy: 20}

	// Ожидания
	repoMock.EXPECT().GetZonesFromCache(ctx).Return(testZones(), nil).Times(1)
	repoMock.EXPECT().GetCentersFromCache(ctx).Return(testCenters(), nil).Times(1)
	repoMock.EXPECT().
		SaveLocationCheck(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, check *models.LocationCheck) error {
			assert.Equal(t, "user-1", check.UserID)
			assert.Equal(t, 20.0, check.Accuracy)
			require.NotNil(t, check.NearestZoneID)
			assert.Equal(t, centroHistorico.ID, *check.NearestZoneID)
			assert.True(t, check.InRiskZone)
			check.ID = 1
			return nil
		}).
		Times(1)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, event webhook.ZoneAlertEvent) error {
			assert.Equal(t, "user-1", event.UserID)
			assert.Equal(t, centroHistorico, event.Zone)
			// Ближайшая больница с приемным отделением
			assert.Equal(t, rosales, event.NearestHospital)
			require.NotNil(t, event.Route)
			assert.Greater(t, event.Route.DurationMin, 0.0)
			return nil
		}).
		Times(1)

	// Действие
	report, err := svc.CheckLocation(ctx, "user-1", loc)

	// Проверки
	require.NoError(t, err)
	assert.True(t, report.InRiskZone)
	assert.Equal(t, centroHistorico, report.NearestZone.Zone)
	assert.Less(t, report.NearestZone.DistanceKm, 0.2)
	assert.Equal(t, rosales, report.NearestCenter.Center)
}

func TestCheckLocation_LowRiskZone_NoAlert(t *testing.T) {
	svc, repoMock, webhookMock := newTestGeoportalService(t)
	ctx := context.Background()
	loc := models.UserLocation{Latitude: 13.6931, Longitude: -89.2449}

	repoMock.EXPECT().GetZonesFromCache(ctx).Return(testZones(), nil).Times(1)
	repoMock.EXPECT().GetCentersFromCache(ctx).Return(testCenters(), nil).Times(1)
	repoMock.EXPECT().SaveLocationCheck(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	report, err := svc.CheckLocation(ctx, "user-2", loc)

	require.NoError(t, err)
	assert.False(t, report.InRiskZone)
	assert.Equal(t, sanBenito, report.NearestZone.Zone)
}

func TestCheckLocation_CriticalZoneOutOfRadius_NoAlert(t *testing.T) {
	svc, repoMock, webhookMock := newTestGeoportalService(t)
	ctx := context.Background()
	// ~2.2 км к северу от Centro Histórico, San Benito еще дальше
	loc := models.UserLocation{Latitude: 13.7189, Longitude: -89.1914}

	repoMock.EXPECT().GetZonesFromCache(ctx).Return(testZones(), nil).Times(1)
	repoMock.EXPECT().GetCentersFromCache(ctx).Return(testCenters(), nil).Times(1)
	repoMock.EXPECT().SaveLocationCheck(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	report, err := svc.CheckLocation(ctx, "user-3", loc)

	require.NoError(t, err)
	assert.Equal(t, centroHistorico, report.NearestZone.Zone)
	assert.False(t, report.InRiskZone)
}

func TestCheckLocation_PublishErrorIsNotFatal(t *testing.T) {
	svc, repoMock, webhookMock := newTestGeoportalService(t)
	ctx := context.Background()
	loc := models.UserLocation{Latitude: 13.6990, Longitude: -89.1915}

	repoMock.EXPECT().GetZonesFromCache(ctx).Return(testZones(), nil).Times(1)
	repoMock.EXPECT().GetCentersFromCache(ctx).Return(testCenters(), nil).Times(1)
	repoMock.EXPECT().SaveLocationCheck(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	report, err := svc.CheckLocation(ctx, "user-4", loc)

	require.NoError(t, err)
	assert.True(t, report.InRiskZone)
}

func TestCheckLocation_NoReferenceData(t *testing.T) {
	svc, repoMock, webhookMock := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetZonesFromCache(ctx).Return([]*models.EmergencyZone{}, nil).Times(1)
	repoMock.EXPECT().GetCentersFromCache(ctx).Return([]*models.MedicalCenter{}, nil).Times(1)
	repoMock.EXPECT().
		SaveLocationCheck(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, check *models.LocationCheck) error {
			assert.Nil(t, check.NearestZoneID)
			assert.False(t, check.InRiskZone)
			return nil
		}).
		Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	report, err := svc.CheckLocation(ctx, "user-5", models.UserLocation{Latitude: 13.7, Longitude: -89.2})

	require.NoError(t, err)
	assert.Nil(t, report.NearestZone)
	assert.Nil(t, report.NearestCenter)
	assert.False(t, report.InRiskZone)
}

func TestCheckLocation_SaveError(t *testing.T) {
	svc, repoMock, webhookMock := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetZonesFromCache(ctx).Return(testZones(), nil).Times(1)
	repoMock.EXPECT().GetCentersFromCache(ctx).Return(testCenters(), nil).Times(1)
	repoMock.EXPECT().SaveLocationCheck(ctx, gomock.Any()).Return(errors.New("insert failed")).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CheckLocation(ctx, "user-6", models.UserLocation{Latitude: 13.6990, Longitude: -89.1915})

	assert.ErrorContains(t, err, "insert failed")
}

func TestActiveUsers(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetLocationCheckStats(ctx, 60).Return(17, nil).Times(1)

	count, err := svc.ActiveUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, 17, count)
}

func TestActiveUsers_Error(t *testing.T) {
	svc, repoMock, _ := newTestGeoportalService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetLocationCheckStats(ctx, 60).Return(0, errors.New("db error")).Times(1)

	_, err := svc.ActiveUsers(ctx)

	assert.ErrorContains(t, err, "db error")
}
