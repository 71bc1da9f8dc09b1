package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Verdantly-Ag/Cropwise/internal/catalog"
	"github.com/Verdantly-Ag/Cropwise/internal/events"
	"github.com/Verdantly-Ag/Cropwise/internal/scoring"
)

type RecommendationsHandler struct {
	store   catalog.Store
	ranker  *scoring.Ranker
	events  events.Client
	metrics *Metrics
	topN    int
}

func NewRecommendationsHandler(s catalog.Store, r *scoring.Ranker, ev events.Client, m *Metrics, topN int) *RecommendationsHandler {
	return &RecommendationsHandler{store: s, ranker: r, events: ev, metrics: m, topN: topN}
}

type RecommendRequest struct {
	SoilPH      float64 `json:"soil_ph"`
	SoilType    string  `json:"soil_type"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	AirQuality  float64 `json:"air_quality"`
	Rainfall    float64 `json:"rainfall"`
	Season      string  `json:"season"`
	TopN        int     `json:"top_n,omitempty"`
}

type RecommendResponse struct {
	ID              uuid.UUID                `json:"id"`
	Recommendations []scoring.Recommendation `json:"recommendations"`
	ConfidenceScore int                      `json:"confidence_score"`
	Warnings        []string                 `json:"warnings,omitempty"`
}

func (h *RecommendationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	obs := scoring.Observation{
		SoilPH:      req.SoilPH,
		SoilType:    req.SoilType,
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		AirQuality:  req.AirQuality,
		Rainfall:    req.Rainfall,
		Season:      req.Season,
	}
	topN := req.TopN
	if topN <= 0 {
		topN = h.topN
	}

	crops, err := h.store.ListCrops(r.Context(), catalog.CropFilter{})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	start := time.Now()
	result, err := h.ranker.Recommend(obs, crops, topN)
	h.metrics.ScoringDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		var verr *scoring.ValidationError
		switch {
		case errors.As(err, &verr):
			h.metrics.ValidationFailures.Inc()
			writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  "invalid observation",
				"issues": verr.Issues,
			})
		case errors.Is(err, scoring.ErrEmptyCatalog):
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "crop catalog is empty"})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}
	h.metrics.Recommendations.Inc()
	if result.Faults > 0 {
		h.metrics.CropFaults.Add(float64(result.Faults))
	}

	rec := buildRecord(obs, result)
	if err := h.store.CreateRecommendation(r.Context(), rec); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil && len(result.Recommendations) > 0 {
		_ = h.events.Publish(events.SubjectRecommendationCreated(rec.ID.String()), events.RecommendationCreatedEvent{
			RecommendationID: rec.ID.String(),
			Season:           obs.Season,
			SoilType:         obs.SoilType,
			TopCrop:          result.Recommendations[0].Name,
			Confidence:       result.Recommendations[0].Confidence,
			WarningCount:     len(result.Warnings),
			Timestamp:        time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusCreated, RecommendResponse{
		ID:              rec.ID,
		Recommendations: result.Recommendations,
		ConfidenceScore: rec.ConfidenceScore,
		Warnings:        rec.Warnings,
	})
}

func (h *RecommendationsHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, rec)
}

func (h *RecommendationsHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.store.ListRecommendations(r.Context(), 50)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if recs == nil {
		recs = []*catalog.RecommendationRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func buildRecord(obs scoring.Observation, result *scoring.Result) *catalog.RecommendationRecord {
	rec := &catalog.RecommendationRecord{
		SoilPH:      obs.SoilPH,
		SoilType:    obs.SoilType,
		Temperature: obs.Temperature,
		Humidity:    obs.Humidity,
		AirQuality:  obs.AirQuality,
		Rainfall:    obs.Rainfall,
		Season:      obs.Season,
	}
	for _, entry := range result.Recommendations {
		rec.RecommendedCrops = append(rec.RecommendedCrops, catalog.RecommendedCrop{
			Name:               entry.Name,
			Confidence:         entry.Confidence,
			Reason:             entry.Reason,
			Description:        entry.Description,
			GrowthDurationDays: entry.GrowthDuration,
		})
	}
	if len(result.Recommendations) > 0 {
		rec.ConfidenceScore = result.Recommendations[0].Confidence
	}
	for _, iss := range result.Warnings {
		rec.Warnings = append(rec.Warnings, iss.Field+": "+iss.Message)
	}
	rec.ScoringFactors = factorBreakdown(result.Scores)
	return rec
}

// factorBreakdown flattens per-crop scores into the shape persisted for the
// explain endpoint.
func factorBreakdown(scores []scoring.CropScore) map[string]interface{} {
	if len(scores) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(scores))
	for _, s := range scores {
		factors := make(map[string]interface{}, len(s.Factors))
		for _, f := range s.Factors {
			factors[f.Name] = map[string]interface{}{
				"score":    f.Score,
				"weight":   f.Weight,
				"weighted": f.Weighted,
				"reason":   f.Reason,
			}
		}
		out[s.CropName] = map[string]interface{}{
			"category":            string(s.Category),
			"raw":                 s.Raw,
			"air_quality_penalty": s.AirQualityPenalty,
			"synergy_multiplier":  s.SynergyMultiplier,
			"confidence":          s.Confidence,
			"factors":             factors,
		}
	}
	return out
}
