package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" mapstructure:"enabled"`
	Path      string `yaml:"path" mapstructure:"path"`
	Namespace string `yaml:"namespace" mapstructure:"namespace"`
	Subsystem string `yaml:"subsystem" mapstructure:"subsystem"`
}

type MetricsManager struct {
	config   MetricsConfig
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpResponseSize    *prometheus.HistogramVec

	exportsTotal         *prometheus.CounterVec
	exportDuration       *prometheus.HistogramVec
	exportFileSize       *prometheus.HistogramVec
	exportEntityCount    *prometheus.HistogramVec
	generationDuration   *prometheus.HistogramVec

	blobOperations      *prometheus.CounterVec
	blobUploadedBytes   *prometheus.CounterVec

	dbConnections    prometheus.Gauge
	dbConnectionsMax prometheus.Gauge
	dbOperations     *prometheus.CounterVec
	dbOperationDuration *prometheus.HistogramVec

	uptimeSeconds prometheus.Gauge
	buildInfo     *prometheus.GaugeVec
}

func NewMetricsManager(config MetricsConfig) *MetricsManager {
	if !config.Enabled {
		return &MetricsManager{config: config}
	}

	registry := prometheus.NewRegistry()

	namespace := config.Namespace
	if namespace == "" {
		namespace = "boscotek"
	}
	subsystem := config.Subsystem
	if subsystem == "" {
		subsystem = "export"
	}

	mm := &MetricsManager{
		config:   config,
		registry: registry,
	}

	mm.httpRequestsTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	mm.httpRequestDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	mm.httpResponseSize = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "response_size_bytes",
			Help:      "HTTP response size in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 2, 10),
		},
		[]string{"method", "path"},
	)

	mm.exportsTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "exports_total",
			Help:      "Total number of export requests by product family",
		},
		[]string{"product_family", "status"},
	)

	mm.exportDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "End to end export duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"product_family"},
	)

	mm.exportFileSize = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "file_size_bytes",
			Help:      "Size of generated IFC files in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 2, 12),
		},
		[]string{"product_family"},
	)

	mm.exportEntityCount = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "entity_count",
			Help:      "Number of STEP entities per generated file",
			Buckets:   prometheus.ExponentialBuckets(32, 2, 8),
		},
		[]string{"product_family"},
	)

	mm.generationDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "generation_duration_seconds",
			Help:      "IFC model generation duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"product_family"},
	)

	mm.blobOperations = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "blob",
			Name:      "operations_total",
			Help:      "Total number of blob store operations",
		},
		[]string{"operation", "status"},
	)

	mm.blobUploadedBytes = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "blob",
			Name:      "uploaded_bytes_total",
			Help:      "Total bytes written to the blob store",
		},
		[]string{"content_type"},
	)

	mm.dbConnections = promauto.With(registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "connections_active",
			Help:      "Number of active database connections",
		},
	)

	mm.dbConnectionsMax = promauto.With(registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "connections_max",
			Help:      "Maximum number of database connections",
		},
	)

	mm.dbOperations = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "operations_total",
			Help:      "Total number of database operations",
		},
		[]string{"operation", "table", "status"},
	)

	mm.dbOperationDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "operation_duration_seconds",
			Help:      "Database operation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	mm.uptimeSeconds = promauto.With(registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "uptime_seconds",
			Help:      "Service uptime in seconds",
		},
	)

	mm.buildInfo = promauto.With(registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build information",
		},
		[]string{"version", "commit", "build_time"},
	)

	return mm
}

func (mm *MetricsManager) RecordHTTPRequest(method, path string, statusCode string, duration time.Duration, responseSize int64) {
	if !mm.config.Enabled {
		return
	}

	mm.httpRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	mm.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	mm.httpResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
}

func (mm *MetricsManager) RecordExport(family, status string, duration time.Duration, fileSize int64, entityCount int) {
	if !mm.config.Enabled {
		return
	}

	mm.exportsTotal.WithLabelValues(family, status).Inc()
	if status == "success" {
		mm.exportDuration.WithLabelValues(family).Observe(duration.Seconds())
		mm.exportFileSize.WithLabelValues(family).Observe(float64(fileSize))
		mm.exportEntityCount.WithLabelValues(family).Observe(float64(entityCount))
	}
}

func (mm *MetricsManager) RecordGeneration(family string, duration time.Duration) {
	if !mm.config.Enabled {
		return
	}
	mm.generationDuration.WithLabelValues(family).Observe(duration.Seconds())
}

func (mm *MetricsManager) RecordBlobOperation(operation, status string) {
	if !mm.config.Enabled {
		return
	}
	mm.blobOperations.WithLabelValues(operation, status).Inc()
}

func (mm *MetricsManager) RecordBlobUpload(contentType string, size int64) {
	if !mm.config.Enabled {
		return
	}
	mm.blobUploadedBytes.WithLabelValues(contentType).Add(float64(size))
}

func (mm *MetricsManager) SetDatabaseConnections(active, max int) {
	if !mm.config.Enabled {
		return
	}
	mm.dbConnections.Set(float64(active))
	mm.dbConnectionsMax.Set(float64(max))
}

func (mm *MetricsManager) RecordDatabaseOperation(operation, table, status string, duration time.Duration) {
	if !mm.config.Enabled {
		return
	}

	mm.dbOperations.WithLabelValues(operation, table, status).Inc()
	mm.dbOperationDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func (mm *MetricsManager) SetUptime(startTime time.Time) {
	if !mm.config.Enabled {
		return
	}
	mm.uptimeSeconds.Set(time.Since(startTime).Seconds())
}

func (mm *MetricsManager) SetBuildInfo(version, commit, buildTime string) {
	if !mm.config.Enabled {
		return
	}
	mm.buildInfo.WithLabelValues(version, commit, buildTime).Set(1)
}

func (mm *MetricsManager) Handler() http.Handler {
	if !mm.config.Enabled {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(mm.registry, promhttp.HandlerOpts{})
}

func (mm *MetricsManager) MetricsMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !mm.config.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()

			wrapped := &metricsResponseWriter{ResponseWriter: w}

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)

			mm.RecordHTTPRequest(
				r.Method,
				r.URL.Path,
				statusLabel(wrapped.statusCode),
				duration,
				wrapped.size,
			)
		})
	}
}

func statusLabel(code int) string {
	if code == 0 {
		code = http.StatusOK
	}
	return strconv.Itoa(code)
}

type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int64
}

func (mrw *metricsResponseWriter) WriteHeader(statusCode int) {
	mrw.statusCode = statusCode
	mrw.ResponseWriter.WriteHeader(statusCode)
}

func (mrw *metricsResponseWriter) Write(data []byte) (int, error) {
	size, err := mrw.ResponseWriter.Write(data)
	mrw.size += int64(size)
	return size, err
}

func (mm *MetricsManager) IsEnabled() bool {
	return mm.config.Enabled
}

func (mm *MetricsManager) StartUptimeTracker(ctx context.Context, startTime time.Time) {
	if !mm.config.Enabled {
		return
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				mm.SetUptime(startTime)
			}
		}
	}()
}
