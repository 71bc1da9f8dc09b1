package scoring

import (
	"log/slog"
	"math"

	"github.com/Verdantly-Ag/Cropwise/internal/catalog"
)

// CropScore is the complete scoring output for one observation–crop pair.
type CropScore struct {
	CropName          string         `json:"crop_name"`
	Category          CropCategory   `json:"category"`
	Factors           []FactorResult `json:"factors"`
	Raw               float64        `json:"raw"`
	AirQualityPenalty float64        `json:"air_quality_penalty"`
	SynergyMultiplier float64        `json:"synergy_multiplier"`
	Confidence        float64        `json:"confidence"`
	Reasons           []string       `json:"reasons"`
}

// DisplayConfidence is the integer confidence shown to callers.
func (cs CropScore) DisplayConfidence() int {
	return int(math.Round(cs.Confidence))
}

// Scorer computes composite suitability scores. It is stateless after
// construction and safe for concurrent use.
type Scorer struct {
	weights WeightSet
	logger  *slog.Logger
}

// NewScorer creates a Scorer with the given base weights.
func NewScorer(weights WeightSet, logger *slog.Logger) *Scorer {
	return &Scorer{weights: weights, logger: logger}
}

// ScoreCrop computes the composite suitability of one crop for one
// observation: six weighted criterion scores, an air-quality cap, a synergy
// adjustment rewarding even performance across criteria, then a logistic
// squash that spreads the mid-range raw scores over a discriminative 0–100
// scale. The crop profile must already be validated.
func (s *Scorer) ScoreCrop(obs Observation, crop *catalog.Crop) CropScore {
	cat := DetectCategory(crop)
	weights := s.weights.ForCategory(cat)

	factors := []FactorResult{
		PHFactor(obs, crop),
		SoilFactor(obs, crop),
		TemperatureFactor(obs, crop),
		HumidityFactor(obs, crop),
		RainfallFactor(obs, crop),
		SeasonFactor(obs, crop),
	}
	weightList := []float64{
		weights.PH,
		weights.SoilType,
		weights.Temperature,
		weights.Humidity,
		weights.Rainfall,
		weights.Season,
	}

	var raw float64
	for i := range factors {
		factors[i].Weight = weightList[i]
		factors[i].Weighted = factors[i].Score * weightList[i]
		raw += factors[i].Weighted
	}

	penalty := AirQualityPenalty(obs.AirQuality, cat.AirQualitySensitive())
	raw *= penalty

	// A crop that is mediocre-but-even across all criteria is operationally
	// safer than one excellent on three and terrible on the rest.
	synergy := 0.85 + 0.15*(1.0-math.Min(stdDev(factors), 0.5))

	normalized := sigmoid((raw-0.5)*8) * 100
	confidence := round2(math.Min(100, normalized*synergy))

	return CropScore{
		CropName:          crop.Name,
		Category:          cat,
		Factors:           factors,
		Raw:               round2(raw),
		AirQualityPenalty: penalty,
		SynergyMultiplier: round2(synergy),
		Confidence:        confidence,
		Reasons:           Reasons(factors, penalty),
	}
}

func stdDev(factors []FactorResult) float64 {
	n := float64(len(factors))
	if n == 0 {
		return 0
	}
	var mean float64
	for _, f := range factors {
		mean += f.Score
	}
	mean /= n
	var variance float64
	for _, f := range factors {
		d := f.Score - mean
		variance += d * d
	}
	return math.Sqrt(variance / n)
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
