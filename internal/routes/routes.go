package routes

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fyyur/internal/config"
	"fyyur/internal/handlers"
	"fyyur/internal/interfaces"
	appmw "fyyur/internal/middleware"
	"fyyur/internal/services"
)

func SetupRoutes(db *sql.DB, cfg *config.Config, s3Config *config.S3Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	var reg *prometheus.Registry
	if cfg.MetricsEnabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		// Outside the recoverer so panics are counted as 500s.
		r.Use(appmw.NewMetrics(reg).Handler)
	}
	r.Use(appmw.Recoverer(http.HandlerFunc(handlers.ServerError)))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if reg != nil {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	r.Get("/health", healthHandler(db))

	if cfg.SwaggerEnabled {
		RegisterSwaggerRoutes(r)
	}

	svc := services.NewBookingService(db, cfg.DisplayTimezone)
	var images interfaces.ImageStore
	if store := services.NewS3ImageStore(s3Config); store != nil {
		images = store
	}

	r.Get("/", handlers.Home)
	RegisterVenueRoutes(r, svc, images)
	RegisterArtistRoutes(r, svc, images)
	RegisterShowRoutes(r, svc)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.NotFound)

	return r
}

type dbHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		resp := struct {
			Status string   `json:"status"`
			DB     dbHealth `json:"db"`
		}{Status: "ok", DB: dbHealth{Status: "ok"}}

		if err := db.PingContext(ctx); err != nil {
			status = http.StatusServiceUnavailable
			resp.Status = "degraded"
			resp.DB = dbHealth{Status: "down", Error: err.Error()}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
