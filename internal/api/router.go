package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Verdantly-Ag/Cropwise/internal/catalog"
	"github.com/Verdantly-Ag/Cropwise/internal/events"
	"github.com/Verdantly-Ag/Cropwise/internal/market"
	"github.com/Verdantly-Ag/Cropwise/internal/scoring"
)

func NewRouter(s catalog.Store, ranker *scoring.Ranker, trends *market.Engine, ev events.Client, m *Metrics, adminToken string, topN int, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	recommendations := NewRecommendationsHandler(s, ranker, ev, m, topN)
	crops := NewCropsHandler(s, ev)
	explain := NewExplainHandler(s)
	trend := NewMarketHandler(trends, ev, m)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommendations", recommendations.Create)
		r.Get("/recommendations", recommendations.List)
		r.Get("/recommendations/{id}", recommendations.Get)
		r.Get("/recommendations/{id}/explain", explain.Explain)

		r.Get("/crops", crops.List)
		r.Get("/crops/{id}", crops.Get)

		r.Post("/market/trend", trend.Trend)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Post("/crops", crops.Create)
			r.Put("/crops/{id}", crops.Update)
			r.Delete("/crops/{id}", crops.Delete)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
