package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Verdantly-Ag/Cropwise/internal/events"
	"github.com/Verdantly-Ag/Cropwise/internal/market"
)

type MarketHandler struct {
	engine  *market.Engine
	events  events.Client
	metrics *Metrics
}

func NewMarketHandler(e *market.Engine, ev events.Client, m *Metrics) *MarketHandler {
	return &MarketHandler{engine: e, events: ev, metrics: m}
}

type TrendRequest struct {
	Crop    string    `json:"crop"`
	Market  string    `json:"market,omitempty"`
	History []float64 `json:"history,omitempty"`
}

func (h *MarketHandler) Trend(w http.ResponseWriter, r *http.Request) {
	var req TrendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Crop == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "crop required"})
		return
	}

	analysis, err := h.engine.Analyze(req.Crop, req.Market, req.History)
	if err != nil {
		if errors.Is(err, market.ErrUnknownCrop) {
			h.metrics.TrendRequests.WithLabelValues("unknown_crop").Inc()
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no price data for crop"})
			return
		}
		h.metrics.TrendRequests.WithLabelValues("error").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.metrics.TrendRequests.WithLabelValues("success").Inc()

	if h.events != nil {
		_ = h.events.Publish(events.SubjectMarketTrend(req.Crop), events.MarketTrendEvent{
			Crop:           analysis.Crop,
			Market:         analysis.Market,
			Trend:          string(analysis.Trend),
			ChangePercent:  analysis.ChangePercent,
			ProjectedPrice: analysis.ProjectedPrice,
		})
	}

	writeJSON(w, http.StatusOK, analysis)
}
