package scoring

import (
	"fmt"
	"math"
)

// reasonPhrases maps each criterion to its threshold-tier phrases:
// optimal (score ≥0.95), acceptable (≥0.7), marginal (≥0.4). Weaker scores
// are omitted rather than worded.
var reasonPhrases = map[string][3]string{
	"ph":          {"Optimal pH range", "Acceptable pH range", "Marginal pH compatibility"},
	"soil_type":   {"Compatible soil", "Related soil type", "Workable soil texture"},
	"temperature": {"Ideal temperature", "Acceptable temperature", "Marginal temperature fit"},
	"humidity":    {"Suitable humidity", "Acceptable humidity", "Marginal humidity"},
	"rainfall":    {"Adequate rainfall", "Acceptable rainfall", "Marginal rainfall"},
	"season":      {"Perfect season", "Suitable season", "Off-season planting possible"},
}

// fallbackReason covers the case where every criterion scored too weak to
// word. Empty explanations are a debuggability defect, so there is always
// at least one reason.
const fallbackReason = "Challenging growing conditions"

// Reasons converts criterion scores into the ordered plain-language
// justification list attached to a recommendation.
func Reasons(factors []FactorResult, airQualityPenalty float64) []string {
	var out []string
	for _, f := range factors {
		phrases, ok := reasonPhrases[f.Name]
		if !ok {
			continue
		}
		switch {
		case f.Score >= 0.95:
			out = append(out, phrases[0])
		case f.Score >= 0.7:
			out = append(out, phrases[1])
		case f.Score >= 0.4:
			out = append(out, phrases[2])
		}
	}
	if airQualityPenalty < 0.9 {
		pct := int(math.Round((1 - airQualityPenalty) * 100))
		out = append(out, fmt.Sprintf("Air quality impact: -%d%%", pct))
	}
	if len(out) == 0 {
		out = append(out, fallbackReason)
	}
	return out
}
