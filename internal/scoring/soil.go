package scoring

import (
	"strings"

	"github.com/Verdantly-Ag/Cropwise/internal/catalog"
)

// relatedSoilScore is the score for soils that are agronomically adjacent
// without being an exact match.
const relatedSoilScore = 0.75

// soilAdjacency maps each soil to the soils it behaves like. The table is
// symmetric; entries are keyed lowercase.
var soilAdjacency = map[string][]string{
	"clay":       {"black", "alluvial"},
	"black":      {"clay", "alluvial"},
	"alluvial":   {"clay", "black", "loamy"},
	"loamy":      {"alluvial", "sandy loam"},
	"sandy loam": {"loamy"},
}

// soilTexture buckets soils into coarse texture classes used as the last
// fallback tier.
var soilTexture = map[string]string{
	"clay":       "heavy",
	"black":      "heavy",
	"loamy":      "medium",
	"alluvial":   "medium",
	"sandy":      "light",
	"sandy loam": "light",
}

// SoilFactor scores the observed soil against a crop's compatible set in
// three tiers: exact membership (1.0), adjacency (0.75), then a coarse
// texture-class match worth 0.2–0.4 proportional to how much of the crop's
// set shares the observed texture. The tiers guarantee a sensible score even
// for soil names the vocabulary has never seen.
func SoilFactor(obs Observation, crop *catalog.Crop) FactorResult {
	observed := strings.ToLower(strings.TrimSpace(obs.SoilType))

	for _, st := range crop.SuitableSoilTypes {
		if strings.ToLower(st) == observed {
			return FactorResult{Name: "soil_type", Score: 1.0, Reason: "exact soil match"}
		}
	}

	for _, adj := range soilAdjacency[observed] {
		for _, st := range crop.SuitableSoilTypes {
			if strings.ToLower(st) == adj {
				return FactorResult{Name: "soil_type", Score: relatedSoilScore, Reason: "related soil type"}
			}
		}
	}

	texture := soilTexture[observed]
	matching := 0
	if texture != "" {
		for _, st := range crop.SuitableSoilTypes {
			if soilTexture[strings.ToLower(st)] == texture {
				matching++
			}
		}
	}
	score := 0.2
	if len(crop.SuitableSoilTypes) > 0 {
		score = 0.2 + 0.2*float64(matching)/float64(len(crop.SuitableSoilTypes))
	}
	return FactorResult{Name: "soil_type", Score: score, Reason: "texture-class fallback"}
}
