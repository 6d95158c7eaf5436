package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geoportal_http_requests_total",
		Help: "Total number of API requests",
	}, []string{"route", "method", "status"})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "geoportal_http_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route"})
	CacheHitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geoportal_cache_hits_total",
		Help: "Total redis cache hits for reference data",
	}, []string{"dataset"})
	CacheMissesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geoportal_cache_misses_total",
		Help: "Total redis cache misses for reference data",
	}, []string{"dataset"})
	NearestQueriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geoportal_nearest_queries_total",
		Help: "Total nearest-entity lookups by entity kind and outcome",
	}, []string{"kind", "found"})
	ZoneAlertsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geoportal_zone_alerts_total",
		Help: "Total location checks that ended inside a high-risk zone",
	}, []string{"risk_level"})
	WebhookDeliveriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geoportal_webhook_deliveries_total",
		Help: "Zone alert webhook deliveries by result",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(NearestQueriesTotal)
	prometheus.MustRegister(ZoneAlertsTotal)
	prometheus.MustRegister(WebhookDeliveriesTotal)
}

// Handler отдает метрики в формате Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware - gin middleware, считающий запросы и их длительность по шаблону маршрута
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		RequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDurationMs.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
	}
}
