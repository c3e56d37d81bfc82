// Package api serves the dashboard's HTTP/JSON surface.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/campusintel/eventd/internal/config"
	"github.com/campusintel/eventd/internal/predictor"
	"github.com/campusintel/eventd/internal/store"
)

// Server wires the store and predictor behind the HTTP handlers.
type Server struct {
	store     store.Store
	predictor predictor.Predictor
	chartCap  int
	listCap   int
	limiter   *rate.Limiter
}

// NewServer creates a Server. The store and predictor are injected; the
// server owns neither lifecycle.
func NewServer(st store.Store, p predictor.Predictor, cfg *config.Config) *Server {
	s := &Server{
		store:     st,
		predictor: p,
		chartCap:  cfg.Stats.ChartRowCap,
		listCap:   cfg.Stats.ListRowCap,
	}
	if cfg.RateLimit.RPS > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	}
	return s
}

// Router builds the chi router with CORS and rate limiting applied.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(s.rateLimit)

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/stats/overview", s.handleOverview)
		r.Get("/stats/charts", s.handleCharts)
		r.Get("/events", s.handleEvents)
		r.Post("/predict", s.handlePredict)
	})

	return r
}

// rateLimit applies a process-wide token bucket. Disabled when no limiter
// is configured.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
