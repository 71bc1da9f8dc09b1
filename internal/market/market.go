// Package market estimates mandi price trends for catalog crops. The
// analysis is fully deterministic: the same crop, market and history always
// produce the same projection, so results are cacheable and replayable.
package market

import (
	"errors"
	"hash/fnv"
	"log/slog"
	"math"
	"strings"
)

var ErrUnknownCrop = errors.New("no base price for crop")

// Reference wholesale prices in INR per quintal.
var basePrices = map[string]float64{
	"rice":      2500,
	"wheat":     2200,
	"cotton":    6000,
	"sugarcane": 3000,
	"maize":     1800,
	"soybean":   4500,
	"potato":    1200,
	"tomato":    2000,
}

// Regional demand multipliers applied on top of the base price.
var marketFactors = map[string]float64{
	"mumbai":    1.15,
	"delhi":     1.10,
	"bangalore": 1.12,
	"kolkata":   1.08,
	"chennai":   1.09,
	"hyderabad": 1.07,
	"pune":      1.11,
}

type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

type Volatility string

const (
	VolatilityLow    Volatility = "low"
	VolatilityMedium Volatility = "medium"
	VolatilityHigh   Volatility = "high"
)

const (
	historyDays    = 90
	projectionDays = 30

	// Total drift over the window below this magnitude counts as stable.
	stableBandPct = 2.0

	cvMediumThreshold = 0.05
	cvHighThreshold   = 0.15
)

// Analysis is the result of one price trend evaluation.
type Analysis struct {
	Crop           string     `json:"crop"`
	Market         string     `json:"market"`
	CurrentPrice   float64    `json:"current_price"`
	ProjectedPrice float64    `json:"projected_price"`
	Trend          Trend      `json:"trend"`
	ChangePercent  float64    `json:"change_percent"`
	Volatility     Volatility `json:"volatility"`
	History        []float64  `json:"history,omitempty"`
}

type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{logger: logger}
}

// Analyze evaluates the price trend for a crop in a market. When history is
// empty a deterministic synthetic series is derived from the crop and market
// names; callers with real mandi data pass it in and the base price table is
// not consulted.
func (e *Engine) Analyze(crop, market string, history []float64) (*Analysis, error) {
	series := history
	if len(series) == 0 {
		base, ok := basePrices[strings.ToLower(crop)]
		if !ok {
			return nil, ErrUnknownCrop
		}
		factor := 1.0
		if f, ok := marketFactors[strings.ToLower(market)]; ok {
			factor = f
		}
		series = syntheticSeries(crop, market, base*factor)
	}

	current := series[len(series)-1]
	slope := linearSlope(series)

	// Per-day slope extrapolated over the projection window, relative to
	// the current price.
	projected := current + slope*projectionDays
	if projected < 0 {
		projected = 0
	}
	changePct := 0.0
	if current > 0 {
		changePct = (projected - current) / current * 100
	}

	a := &Analysis{
		Crop:           crop,
		Market:         market,
		CurrentPrice:   round2(current),
		ProjectedPrice: round2(projected),
		Trend:          classifyTrend(changePct),
		ChangePercent:  round2(changePct),
		Volatility:     classifyVolatility(series),
		History:        series,
	}
	e.logger.Debug("price trend evaluated",
		"crop", crop, "market", market,
		"trend", a.Trend, "change_pct", a.ChangePercent)
	return a, nil
}

func classifyTrend(changePct float64) Trend {
	switch {
	case changePct > stableBandPct:
		return TrendRising
	case changePct < -stableBandPct:
		return TrendFalling
	default:
		return TrendStable
	}
}

func classifyVolatility(series []float64) Volatility {
	cv := coefficientOfVariation(series)
	switch {
	case cv < cvMediumThreshold:
		return VolatilityLow
	case cv < cvHighThreshold:
		return VolatilityMedium
	default:
		return VolatilityHigh
	}
}

// linearSlope is the least-squares slope of the series over its index.
func linearSlope(series []float64) float64 {
	n := float64(len(series))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

func coefficientOfVariation(series []float64) float64 {
	n := float64(len(series))
	if n < 2 {
		return 0
	}
	var sum float64
	for _, v := range series {
		sum += v
	}
	mean := sum / n
	if mean == 0 {
		return 0
	}
	var variance float64
	for _, v := range series {
		variance += (v - mean) * (v - mean)
	}
	variance /= n
	return math.Sqrt(variance) / mean
}

// syntheticSeries derives a repeatable daily price series from the crop and
// market names. A seeded linear congruential generator supplies the noise so
// repeated calls never disagree.
func syntheticSeries(crop, market string, anchor float64) []float64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(crop)))
	h.Write([]byte{'|'})
	h.Write([]byte(strings.ToLower(market)))
	state := h.Sum64()

	// Seasonal drift direction also comes from the seed, up to +/-10% over
	// the window.
	state = lcg(state)
	drift := (float64(state%2001)/1000 - 1.0) * 0.10

	series := make([]float64, historyDays)
	for i := range series {
		state = lcg(state)
		noise := (float64(state%2001)/1000 - 1.0) * 0.03
		progress := float64(i) / float64(historyDays-1)
		series[i] = round2(anchor * (1 + drift*(progress-1) + noise))
	}
	return series
}

func lcg(state uint64) uint64 {
	return state*6364136223846793005 + 1442695040888963407
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
