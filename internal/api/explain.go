package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Verdantly-Ag/Cropwise/internal/catalog"
)

type ExplainHandler struct {
	store catalog.Store
}

func NewExplainHandler(s catalog.Store) *ExplainHandler {
	return &ExplainHandler{store: s}
}

// Explain returns the persisted per-crop factor breakdown for a past
// recommendation.
// GET /api/v1/recommendations/{id}/explain
func (h *ExplainHandler) Explain(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid recommendation id"})
		return
	}

	rec, err := h.store.GetRecommendation(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if rec == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "recommendation not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"recommendation_id": rec.ID,
		"observation": map[string]interface{}{
			"soil_ph":     rec.SoilPH,
			"soil_type":   rec.SoilType,
			"temperature": rec.Temperature,
			"humidity":    rec.Humidity,
			"air_quality": rec.AirQuality,
			"rainfall":    rec.Rainfall,
			"season":      rec.Season,
		},
		"scoring_factors": rec.ScoringFactors,
	})
}
