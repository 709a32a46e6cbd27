package internal

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/starford/noteful/internal/api"
	"github.com/starford/noteful/internal/database"
	"github.com/starford/noteful/internal/metrics"
)

// pinger is satisfied by *database.DB.
type pinger interface {
	Ping(ctx context.Context) error
}

// newHandler builds the root chi router: middleware, health and metrics
// endpoints, and the REST resources under /api.
func newHandler(cfg *Config, db pinger, repos database.Repositories, m *metrics.Metrics, logger *slog.Logger) http.Handler {
	errs := api.NewErrorHandler(cfg.App.IsProduction(), logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	switch cfg.App.Env {
	case EnvTest:
	case EnvProduction:
		r.Use(api.RequestLogger(logger, api.LogFormatTiny))
	default:
		r.Use(api.RequestLogger(logger, api.LogFormatCommon))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.App.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Location"},
		MaxAge:         300,
	}))
	r.Use(api.SecurityHeaders)
	r.Use(api.Recoverer(errs))
	r.Use(m.Middleware)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Hello, world!"))
	})

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, http.StatusOK, "ok")
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			logger.Warn("readiness check failed", slog.String("error", err.Error()))
			writeStatus(w, http.StatusServiceUnavailable, "unavailable")
			return
		}
		writeStatus(w, http.StatusOK, "ok")
	})

	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Mount("/api", api.NewRouter(repos, errs, cfg.Resources.Examples))

	return r
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(`{"status":"` + status + `"}`))
}
