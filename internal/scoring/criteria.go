package scoring

import (
	"math"

	"github.com/Verdantly-Ag/Cropwise/internal/catalog"
)

// FactorResult captures one criterion's contribution to a crop's score.
type FactorResult struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
	Reason   string  `json:"reason,omitempty"`
}

// Smoothing widths for the Gaussian tolerance curves. Wider means a gentler
// falloff outside the optimal range.
const (
	widthPH          = 1.3
	widthTemperature = 1.9
	widthHumidity    = 2.0
	widthRainfall    = 2.5

	// Guards rangeScore against zero-width optimal ranges.
	rangeEpsilon = 1e-6
)

// rangeScore maps a value against an optimal [lo,hi] range. In-range values
// score 1.0; outside, the score decays as exp(-(d/half)^2 / width) where d is
// the distance to the nearest bound and half is half the range span. Sensor
// readings rarely land exactly inside bounds, so near-misses are rewarded
// smoothly instead of cut off.
func rangeScore(value, lo, hi, width float64) float64 {
	if value >= lo && value <= hi {
		return 1.0
	}
	span := hi - lo
	if span < rangeEpsilon {
		span = rangeEpsilon
	}
	half := span / 2
	dist := lo - value
	if value > hi {
		dist = value - hi
	}
	norm := dist / half
	return math.Exp(-(norm * norm) / width)
}

func PHFactor(obs Observation, crop *catalog.Crop) FactorResult {
	score := rangeScore(obs.SoilPH, crop.OptimalPHMin, crop.OptimalPHMax, widthPH)
	return FactorResult{Name: "ph", Score: score}
}

func TemperatureFactor(obs Observation, crop *catalog.Crop) FactorResult {
	score := rangeScore(obs.Temperature, crop.OptimalTempMin, crop.OptimalTempMax, widthTemperature)
	return FactorResult{Name: "temperature", Score: score}
}

func HumidityFactor(obs Observation, crop *catalog.Crop) FactorResult {
	score := rangeScore(obs.Humidity, crop.OptimalHumidityMin, crop.OptimalHumidityMax, widthHumidity)
	return FactorResult{Name: "humidity", Score: score}
}

func RainfallFactor(obs Observation, crop *catalog.Crop) FactorResult {
	score := rangeScore(obs.Rainfall, crop.OptimalRainfallMin, crop.OptimalRainfallMax, widthRainfall)
	return FactorResult{Name: "rainfall", Score: score}
}

// SeasonFactor scores 1.0 on an exact season match or a year-round crop.
// A mismatched season is still cultivable, just penalized.
func SeasonFactor(obs Observation, crop *catalog.Crop) FactorResult {
	if crop.Season == SeasonYearRound || crop.Season == obs.Season {
		return FactorResult{Name: "season", Score: 1.0, Reason: "season match"}
	}
	return FactorResult{Name: "season", Score: 0.25, Reason: "off-season"}
}

// AirQualityPenalty returns the multiplicative cap applied after weighted
// aggregation. Pollution does not trade off against good soil — it limits
// achievable suitability regardless of the other criteria. Sensitive crop
// categories take a doubled penalty.
func AirQualityPenalty(aqi float64, sensitive bool) float64 {
	var p float64
	switch {
	case aqi <= 50:
		p = 1.0
	case aqi <= 100:
		p = 0.95
	case aqi <= 150:
		p = 0.85
	case aqi <= 200:
		p = 0.70
	case aqi <= 300:
		p = 0.50
	default:
		p = 0.30
	}
	if sensitive {
		p = 1 - 2*(1-p)
		if p < 0.05 {
			p = 0.05
		}
	}
	return p
}
