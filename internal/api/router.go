package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/opiegroup/boscotek2026-sub003/internal/api/handlers"
	"github.com/opiegroup/boscotek2026-sub003/internal/api/middleware"
	"github.com/opiegroup/boscotek2026-sub003/internal/export"
	"github.com/opiegroup/boscotek2026-sub003/internal/health"
	"github.com/opiegroup/boscotek2026-sub003/internal/observability"
)

// Router sets up and configures the HTTP router
type Router struct {
	exportHandler *handlers.ExportHandler
	blobHandler   *handlers.BlobHandler
	healthChecker *health.HealthChecker
	metrics       *observability.MetricsManager
	tracing       *observability.TracingManager
}

// NewRouter creates a new router instance. blobs may be nil when downloads
// are served elsewhere.
func NewRouter(service *export.Service, blobs handlers.BlobReader, healthChecker *health.HealthChecker, metrics *observability.MetricsManager, tracing *observability.TracingManager) *Router {
	r := &Router{
		exportHandler: handlers.NewExportHandler(service),
		healthChecker: healthChecker,
		metrics:       metrics,
		tracing:       tracing,
	}
	if blobs != nil {
		r.blobHandler = handlers.NewBlobHandler(blobs)
	}
	return r
}

// SetupRoutes configures all routes and middleware
func (r *Router) SetupRoutes() http.Handler {
	router := chi.NewRouter()

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.Logger())
	router.Use(chiMiddleware.Recoverer)
	router.Use(middleware.ErrorHandler())

	if r.tracing != nil {
		router.Use(r.tracing.TraceMiddleware())
	}
	if r.metrics != nil {
		router.Use(r.metrics.MetricsMiddleware())
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Use(chiMiddleware.Timeout(60 * time.Second))

	router.Use(middleware.RateLimit(100, time.Minute))

	router.Get("/health", r.healthCheck)
	router.Get("/ready", r.readinessCheck)

	if r.metrics != nil {
		router.Method(http.MethodGet, "/metrics", r.metrics.Handler())
	}

	if r.blobHandler != nil {
		router.Get("/blobs/*", r.blobHandler.Download)
	}

	router.Route("/api/v1", func(apiRouter chi.Router) {
		apiRouter.Route("/exports", func(exportRouter chi.Router) {
			exportRouter.Post("/", r.exportHandler.CreateExport)
			exportRouter.Get("/", r.exportHandler.ListExports)

			exportRouter.Route("/{exportID}", func(idRouter chi.Router) {
				idRouter.Get("/", r.exportHandler.GetExport)
			})
		})
	})

	return router
}

// healthCheck returns the health status of the system
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	if r.healthChecker != nil {
		systemHealth := r.healthChecker.Check(ctx)

		statusCode := http.StatusOK
		if systemHealth.Status == health.StatusUnhealthy {
			statusCode = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(systemHealth)
		return
	}

	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// readinessCheck returns the readiness status of the system
func (r *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	if r.healthChecker != nil {
		systemHealth := r.healthChecker.Check(ctx)
		if systemHealth.Status == health.StatusUnhealthy {
			http.Error(w, "Service not ready", http.StatusServiceUnavailable)
			return
		}
	}

	response := map[string]interface{}{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
