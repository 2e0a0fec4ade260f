package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrymomot/mailform/pkg/metrics"
)

// Router mounts the contact API. Cross-origin browser requests are allowed
// only from the configured exact origins; requests without an Origin header
// (curl, server-to-server) pass through untouched.
func Router(svc *Service, cfg Config) chi.Router {
	r := chi.NewRouter()

	corsOpts := cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if len(cfg.AllowedOrigins) == 0 {
		// An unset allow-list means no cross-origin caller is trusted.
		// Without this func go-chi/cors treats an empty list as a wildcard.
		corsOpts.AllowOriginFunc = func(r *http.Request, origin string) bool { return false }
	}

	r.Use(middleware.Recoverer)
	r.Use(metrics.HTTPMetrics)
	r.Use(cors.Handler(corsOpts))

	r.Get("/api/health", svc.HandleHealth)
	r.Post("/api/contact", svc.HandleSubmit)
	r.Handle("/metrics", metrics.Handler())

	return r
}
