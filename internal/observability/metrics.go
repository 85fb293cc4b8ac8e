package observability

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/abcd-backend/internal/modules/filtering"
	"github.com/yungbote/abcd-backend/internal/platform/envutil"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

const namespace = "abcd"

// Metrics owns a private Prometheus registry. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	resolutions     *prometheus.CounterVec
	resolveLatency  *prometheus.HistogramVec
	appliedFacets   *prometheus.HistogramVec
	resolvedIDs     *prometheus.HistogramVec
	lookupFailures  *prometheus.CounterVec
	cacheRequests   *prometheus.CounterVec
	cacheGeneration prometheus.Gauge

	redisUp   prometheus.Gauge
	redisPing prometheus.Gauge
}

func Enabled() bool {
	return envutil.Bool("METRICS_ENABLED", true)
}

func scrapeInterval() time.Duration {
	d := envutil.Duration("METRICS_SCRAPE_INTERVAL", 10*time.Second)
	if d <= 0 {
		return 10 * time.Second
	}
	return d
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		apiRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		apiLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		apiInflight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_inflight_requests",
			Help:      "HTTP requests currently being served.",
		}),
		resolutions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "resolutions_total",
			Help:      "Filter resolutions by registry, kind, strategy and outcome.",
		}, []string{"registry", "kind", "strategy", "outcome"}),
		resolveLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "resolution_duration_seconds",
			Help:      "Filter resolution latency.",
			Buckets:   []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"registry", "strategy"}),
		appliedFacets: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "applied_facets",
			Help:      "Applied facets per resolution.",
			Buckets:   []float64{0, 1, 2, 3, 4, 6, 8, 12},
		}, []string{"registry"}),
		resolvedIDs: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "resolved_ids",
			Help:      "Ids returned per resolution.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"registry"}),
		lookupFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "lookup_failures_total",
			Help:      "Association lookups that failed.",
		}, []string{"registry", "kind", "facet"}),
		cacheRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter_cache",
			Name:      "requests_total",
			Help:      "Resolution cache lookups by result.",
		}, []string{"result"}),
		cacheGeneration: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "filter_cache",
			Name:      "generation",
			Help:      "Current cache generation.",
		}),
		redisUp: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "redis_up",
			Help:      "Redis connectivity (1=up, 0=down).",
		}),
		redisPing: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "redis_ping_seconds",
			Help:      "Redis ping latency in seconds.",
		}),
	}
}

// Init returns nil when METRICS_ENABLED is off.
func Init(log *logger.Logger) *Metrics {
	if !Enabled() {
		if log != nil {
			log.Info("metrics disabled")
		}
		return nil
	}
	return New()
}

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RequestStarted counts a request as in flight until RequestDone.
func (m *Metrics) RequestStarted() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

// RequestDone closes a RequestStarted and records the request. An empty route means gin matched
// none.
func (m *Metrics) RequestDone(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unmatched"
	}
	code := strconv.Itoa(status)
	m.apiRequests.WithLabelValues(method, route, code).Inc()
	m.apiLatency.WithLabelValues(method, route, code).Observe(dur.Seconds())
}

// ObserveResolution records one resolver call.
func (m *Metrics) ObserveResolution(r filtering.Resolution) {
	if m == nil {
		return
	}
	outcome := "ok"
	switch {
	case r.Err != nil:
		outcome = "error"
	case r.Results == 0:
		outcome = "empty"
	}
	m.resolutions.WithLabelValues(r.Registry, string(r.Kind), r.Strategy, outcome).Inc()
	m.resolveLatency.WithLabelValues(r.Registry, r.Strategy).Observe(r.Duration.Seconds())
	m.appliedFacets.WithLabelValues(r.Registry).Observe(float64(r.Applied))
	if r.Err == nil {
		m.resolvedIDs.WithLabelValues(r.Registry).Observe(float64(r.Results))
	}
	var lerr *filtering.LookupError
	if errors.As(r.Err, &lerr) {
		m.lookupFailures.WithLabelValues(lerr.Registry, lerr.Target, string(lerr.Facet)).Inc()
	}
}

func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.cacheRequests.WithLabelValues(result).Inc()
}

func (m *Metrics) SetCacheGeneration(gen int64) {
	if m == nil {
		return
	}
	m.cacheGeneration.Set(float64(gen))
}

// RegisterDB exports database/sql pool stats for db.
func (m *Metrics) RegisterDB(log *logger.Logger, db *gorm.DB) {
	if m == nil || db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		if log != nil {
			log.Warn("metrics: db stats unavailable", "error", err)
		}
		return
	}
	if err := m.registry.Register(collectors.NewDBStatsCollector(sqlDB, strings.ToLower(db.Dialector.Name()))); err != nil && log != nil {
		log.Warn("metrics: register db stats failed", "error", err)
	}
}

func (m *Metrics) StartRedisCollector(ctx context.Context, log *logger.Logger, rdb *redis.Client) {
	if m == nil || rdb == nil {
		return
	}
	interval := scrapeInterval()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				start := time.Now()
				if err := rdb.Ping(ctx).Err(); err != nil {
					m.redisUp.Set(0)
					if log != nil {
						log.Warn("metrics: redis ping failed", "error", err)
					}
					continue
				}
				m.redisUp.Set(1)
				m.redisPing.Set(time.Since(start).Seconds())
			}
		}
	}()
}
