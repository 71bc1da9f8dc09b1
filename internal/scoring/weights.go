package scoring

import (
	"fmt"
	"math"
)

// WeightSet defines the relative importance of each criterion.
// All weights must sum to 1.0 (±0.001 tolerance).
type WeightSet struct {
	PH          float64
	SoilType    float64
	Temperature float64
	Humidity    float64
	Rainfall    float64
	Season      float64
}

// DefaultWeights returns the base weight distribution before any category
// adjustment.
func DefaultWeights() WeightSet {
	return WeightSet{
		PH:          0.18,
		SoilType:    0.18,
		Temperature: 0.22,
		Humidity:    0.15,
		Rainfall:    0.20,
		Season:      0.07,
	}
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.PH + w.SoilType + w.Temperature + w.Humidity + w.Rainfall + w.Season
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w WeightSet) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range w.asList() {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}

func (w WeightSet) asList() []float64 {
	return []float64{w.PH, w.SoilType, w.Temperature, w.Humidity, w.Rainfall, w.Season}
}

// ForCategory returns the weight set shifted for a crop category. Every
// adjustment is balanced so the result still sums to 1.0: rice-likes lean on
// rainfall and humidity over temperature, spice-likes on humidity and soil,
// millet-likes on temperature over rainfall.
func (w WeightSet) ForCategory(cat CropCategory) WeightSet {
	adj := w
	switch cat {
	case CategoryRiceLike:
		adj.Temperature -= 0.08
		adj.Rainfall += 0.05
		adj.Humidity += 0.03
	case CategorySpiceLike:
		adj.PH -= 0.04
		adj.Temperature -= 0.05
		adj.SoilType += 0.04
		adj.Humidity += 0.05
	case CategoryMilletLike:
		adj.Temperature += 0.06
		adj.Rainfall -= 0.06
	}
	return adj
}
