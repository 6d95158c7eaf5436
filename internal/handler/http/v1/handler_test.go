package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/geoportal/internal/assistant"
	"github.com/shenikar/geoportal/internal/config"
	"github.com/shenikar/geoportal/internal/geo"
	"github.com/shenikar/geoportal/internal/models"
	"github.com/shenikar/geoportal/internal/service"
	"github.com/shenikar/geoportal/internal/service/mocks"
	"github.com/shenikar/geoportal/internal/stats"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/mock/gomock"
)

var authHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockGeoportalService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockGeoportalService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(mockService, assistant.NewDefaultResponder(), logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func floatPtr(v float64) *float64 { return &v }

func testHospital() *models.MedicalCenter {
	return &models.MedicalCenter{
		ID:        uuid.New(),
		Name:      "Hospital Rosales",
		Type:      models.CenterHospital,
		Latitude:  13.7004,
		Longitude: -89.2042,
		Services:  []string{"urgencias"},
		Emergency: true,
	}
}

func testZone() *models.EmergencyZone {
	return &models.EmergencyZone{
		ID:            uuid.New(),
		Name:          "Centro Histórico",
		Latitude:      13.6989,
		Longitude:     -89.1914,
		RiskLevel:     models.RiskCritical,
		EmergencyRate: 42.5,
	}
}

func TestHealthCheck_NoAuthRequired(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAuth_MissingKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListCenters(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodGet, "/api/v1/centers", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAuth_InvalidKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListZones(gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/zones", nil, map[string]string{"X-API-Key": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAuth_BearerToken(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListZones(gomock.Any()).Return([]*models.EmergencyZone{}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/zones", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListCenters_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	hospital := testHospital()

	mockService.EXPECT().
		ListCenters(gomock.Any(), models.CenterHospital).
		Return([]*models.MedicalCenter{hospital}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/centers?type=hospital", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []CenterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, hospital.ID, resp[0].ID)
	assert.Equal(t, "#EF4444", resp[0].Color)
	assert.Equal(t, "🏥", resp[0].Icon)
	assert.Nil(t, resp[0].DistanceKm)
}

func TestListCenters_InvalidType(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListCenters(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/centers?type=pharmacy", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCenters_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListCenters(gomock.Any(), models.CenterType("")).Return(nil, errors.New("db error")).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/centers", nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestNearestCenter_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	hospital := testHospital()
	match := &service.CenterMatch{
		Center:     hospital,
		DistanceKm: 1.5,
		Route:      geo.RouteEstimate{DistanceKm: 1.5, DurationMin: 2.25},
	}

	mockService.EXPECT().
		NearestCenter(gomock.Any(), &models.UserLocation{Latitude: 13.69, Longitude: -89.21}).
		Return(match, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/centers/nearest?lat=13.69&lng=-89.21", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CenterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.DistanceKm)
	assert.Equal(t, 1.5, *resp.DistanceKm)
	require.NotNil(t, resp.Route)
	assert.Equal(t, "1.5 km", resp.Route.Distance)
	assert.Equal(t, "2 min", resp.Route.Duration)
}

func TestNearestCenter_ZeroCoordinatesAreValid(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		NearestCenter(gomock.Any(), &models.UserLocation{Latitude: 0, Longitude: 0}).
		Return(nil, fmt.Errorf("service: nearest center: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/centers/nearest?lat=0&lng=0", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no medical center found")
}

func TestNearestCenter_InvalidCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().NearestCenter(gomock.Any(), gomock.Any()).Times(0)

	for _, query := range []string{"", "?lat=13.7", "?lat=91&lng=0", "?lat=0&lng=181", "?lat=abc&lng=0"} {
		w := makeRequest(router, http.MethodGet, "/api/v1/centers/nearest"+query, nil, authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestRouteToCenter_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	hospital := testHospital()
	match := &service.CenterMatch{
		Center:     hospital,
		DistanceKm: 75,
		Route:      geo.RouteEstimate{DistanceKm: 75, DurationMin: 112.5},
	}

	mockService.EXPECT().
		RouteToCenter(gomock.Any(), models.UserLocation{Latitude: 13.5, Longitude: -88.9}, hospital.ID).
		Return(match, nil).
		Times(1)

	url := fmt.Sprintf("/api/v1/centers/%s/route?lat=13.5&lng=-88.9", hospital.ID)
	w := makeRequest(router, http.MethodGet, url, nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CenterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1h 53min", resp.Route.Duration)
}

func TestRouteToCenter_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().RouteToCenter(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/centers/not-a-uuid/route?lat=1&lng=1", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid center ID")
}

func TestRouteToCenter_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().
		RouteToCenter(gomock.Any(), gomock.Any(), id).
		Return(nil, service.ErrNotFound).
		Times(1)

	w := makeRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/centers/%s/route?lat=1&lng=1", id), nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCoverageMap(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	hospital := testHospital()
	fc := geo.CoverageCollection([]geo.CoverageArea{{ID: hospital.ID.String(), Center: hospital.Location(), RadiusKm: 1}})

	mockService.EXPECT().CoverageMap(gomock.Any()).Return(fc, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/coverage", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var decoded geojson.FeatureCollection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	require.Len(t, decoded.Features, 1)
	assert.Equal(t, hospital.ID.String(), decoded.Features[0].ID)
}

func TestListZones(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	zone := testZone()

	mockService.EXPECT().ListZones(gomock.Any()).Return([]*models.EmergencyZone{zone}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/zones", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []ZoneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "critical", resp[0].RiskLevel)
	assert.Equal(t, "#7C2D12", resp[0].Color)
	assert.Equal(t, "42.5 por 1000 hab.", resp[0].FormattedRate)
}

func TestNearestZone_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	zone := testZone()

	mockService.EXPECT().
		NearestZone(gomock.Any(), gomock.Any()).
		Return(&service.ZoneMatch{Zone: zone, DistanceKm: 0.4}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/zones/nearest?lat=13.7&lng=-89.19", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ZoneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, zone.ID, resp.ID)
	require.NotNil(t, resp.DistanceKm)
	assert.Equal(t, 0.4, *resp.DistanceKm)
}

func TestNearestZone_NoZones(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().NearestZone(gomock.Any(), gomock.Any()).Return(nil, service.ErrNotFound).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/zones/nearest?lat=13.7&lng=-89.19", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestZoneMetrics(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()
	metrics := &stats.ZoneMetrics{
		ActiveIncidents:      1,
		ResolvedIncidents:    2,
		AverageResponseTime:  15,
		SeverityDistribution: map[models.Severity]int{models.SeverityHigh: 2, models.SeverityLow: 1},
	}

	mockService.EXPECT().ZoneMetrics(gomock.Any(), id).Return(metrics, nil).Times(1)

	w := makeRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/zones/%s/metrics", id), nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{
		"zone_id": "%s",
		"active_incidents": 1,
		"resolved_incidents": 2,
		"average_response_time": 15,
		"severity_distribution": {"high": 2, "low": 1}
	}`, id), w.Body.String())
}

func TestZoneMetrics_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().ZoneMetrics(gomock.Any(), id).Return(nil, fmt.Errorf("service: zone %s: %w", id, service.ErrNotFound)).Times(1)

	w := makeRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/zones/%s/metrics", id), nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "zone not found")
}

func TestZoneHospitals(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()
	first, second := testHospital(), testHospital()

	mockService.EXPECT().
		NearestHospitalsToZone(gomock.Any(), id).
		Return([]*service.CenterMatch{
			{Center: first, DistanceKm: 0.5, Route: geo.RouteEstimate{DistanceKm: 0.5, DurationMin: 0.75}},
			{Center: second, DistanceKm: 2, Route: geo.RouteEstimate{DistanceKm: 2, DurationMin: 3}},
		}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/zones/%s/hospitals", id), nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []CenterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, first.ID, resp[0].ID)
	assert.Equal(t, "500 m", resp[0].Route.Distance)
	assert.Equal(t, second.ID, resp[1].ID)
}

func TestSystemStats(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	updated := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	mockService.EXPECT().SystemStats(gomock.Any()).Return(&stats.SystemStats{
		TotalIncidents:         3,
		AverageResponseTime:    10.3,
		CriticalZones:          1,
		HospitalsWithEmergency: 2,
		LastUpdate:             updated,
	}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/stats", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp SystemStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalIncidents)
	assert.Equal(t, 10.3, resp.AverageResponseTime)
	assert.Equal(t, 2, resp.HospitalsWithEmergency)
	assert.True(t, updated.Equal(resp.LastUpdate))
}

func TestActiveUsers(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ActiveUsers(gomock.Any()).Return(5, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/stats/users", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_count":5}`, w.Body.String())
}

func TestActiveUsers_Error(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ActiveUsers(gomock.Any()).Return(0, errors.New("db error")).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/stats/users", nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRiskLevel(t *testing.T) {
	_, _, router := newTestHandler(t)

	cases := map[string]string{
		"45":   "critical",
		"40":   "critical",
		"39.9": "high",
		"30":   "high",
		"20":   "medium",
		"0":    "low",
	}
	for rate, expected := range cases {
		w := makeRequest(router, http.MethodGet, "/api/v1/risk-level?rate="+rate, nil, authHeader)
		require.Equal(t, http.StatusOK, w.Code, rate)

		var resp RiskLevelResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, expected, resp.RiskLevel, rate)
	}
}

func TestRiskLevel_InvalidRate(t *testing.T) {
	_, _, router := newTestHandler(t)

	for _, query := range []string{"", "?rate=-1", "?rate=many"} {
		w := makeRequest(router, http.MethodGet, "/api/v1/risk-level"+query, nil, authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestCheckLocation_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	zone := testZone()
	hospital := testHospital()
	reqBody := LocationCheckRequest{
		UserID:    "user-1",
		Latitude:  floatPtr(13.6995),
		Longitude: floatPtr(-89.1920),
		Accuracy:  25,
	}
	report := &service.LocationReport{
		NearestZone:   &service.ZoneMatch{Zone: zone, DistanceKm: 0.09},
		InRiskZone:    true,
		NearestCenter: &service.CenterMatch{Center: hospital, DistanceKm: 1.3, Route: geo.EstimateRoute(geo.Point{Lat: 13.6995, Lng: -89.1920}, hospital.Location())},
	}

	mockService.EXPECT().
		CheckLocation(gomock.Any(), "user-1", models.UserLocation{Latitude: 13.6995, Longitude: -89.1920, Accuracy: 25}).
		Return(report, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/location/check", jsonBody(t, reqBody), authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp LocationCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.InRiskZone)
	require.NotNil(t, resp.NearestZone)
	assert.Equal(t, zone.ID, resp.NearestZone.ID)
	require.NotNil(t, resp.NearestCenter)
	assert.Equal(t, hospital.ID, resp.NearestCenter.ID)
}

func TestCheckLocation_EmptyReport(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := LocationCheckRequest{UserID: "user-2", Latitude: floatPtr(0), Longitude: floatPtr(0)}

	mockService.EXPECT().CheckLocation(gomock.Any(), "user-2", gomock.Any()).Return(&service.LocationReport{}, nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/location/check", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"in_risk_zone":false}`, w.Body.String())
}

func TestCheckLocation_InvalidBody(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().CheckLocation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/location/check", bytes.NewBufferString("{invalid json"), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCheckLocation_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().CheckLocation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := LocationCheckRequest{UserID: "", Latitude: floatPtr(100), Longitude: floatPtr(0)}
	w := makeRequest(router, http.MethodPost, "/api/v1/location/check", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckLocation_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := LocationCheckRequest{UserID: "user-3", Latitude: floatPtr(13.7), Longitude: floatPtr(-89.2)}

	mockService.EXPECT().CheckLocation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db error")).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/location/check", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAssistantMessage(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/assistant/messages",
		jsonBody(t, AssistantMessageRequest{Message: "¿Dónde está el HOSPITAL más cercano?"}), authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp AssistantReplyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hospital", resp.Rule)
	assert.NotEmpty(t, resp.Reply)
}

func TestAssistantMessage_Blank(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/assistant/messages",
		jsonBody(t, AssistantMessageRequest{Message: "   "}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message is empty")
}
