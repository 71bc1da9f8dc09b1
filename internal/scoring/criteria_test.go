package scoring

import (
	"math"
	"testing"

	"github.com/Verdantly-Ag/Cropwise/internal/catalog"
)

func TestRangeScoreInRange(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		lo, hi float64
	}{
		{"midpoint", 6.25, 5.5, 7.0},
		{"lower bound", 5.5, 5.5, 7.0},
		{"upper bound", 7.0, 5.5, 7.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rangeScore(tt.value, tt.lo, tt.hi, widthPH); got != 1.0 {
				t.Errorf("expected 1.0, got %f", got)
			}
		})
	}
}

func TestRangeScoreMonotonicFalloff(t *testing.T) {
	// Scores must be non-increasing as the value moves farther outside the
	// range in either direction.
	prev := 1.0
	for _, v := range []float64{7.0, 7.2, 7.5, 8.0, 9.0, 11.0} {
		score := rangeScore(v, 5.5, 7.0, widthPH)
		if score > prev {
			t.Errorf("score increased moving away from range: %f at %f (prev %f)", score, v, prev)
		}
		prev = score
	}
	prev = 1.0
	for _, v := range []float64{5.5, 5.3, 5.0, 4.5, 3.0, 1.0} {
		score := rangeScore(v, 5.5, 7.0, widthPH)
		if score > prev {
			t.Errorf("score increased moving below range: %f at %f (prev %f)", score, v, prev)
		}
		prev = score
	}
}

func TestRangeScoreNearMissRewarded(t *testing.T) {
	score := rangeScore(7.5, 5.5, 7.0, widthPH)
	if score <= 0.5 || score >= 1.0 {
		t.Errorf("near-miss should land between 0.5 and 1.0, got %f", score)
	}
}

func TestRangeScoreDegenerateRange(t *testing.T) {
	if got := rangeScore(5.0, 5.0, 5.0, widthPH); got != 1.0 {
		t.Errorf("value equal to a zero-width range should score 1.0, got %f", got)
	}
	if got := rangeScore(5.1, 5.0, 5.0, widthPH); got > 0.001 {
		t.Errorf("value off a zero-width range should score near zero, got %f", got)
	}
}

func TestSoilFactorTiers(t *testing.T) {
	crop := &catalog.Crop{Name: "Rice", SuitableSoilTypes: []string{"Clay", "Loamy"}}

	tests := []struct {
		name string
		soil string
		want float64
	}{
		{"exact match", "Loamy", 1.0},
		{"exact match case-insensitive", "clay", 1.0},
		{"adjacent soil", "Black", relatedSoilScore}, // Black is adjacent to Clay
		{"texture fallback", "Sandy", 0.2},           // light texture, no overlap with heavy/medium set
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SoilFactor(Observation{SoilType: tt.soil}, crop)
			if math.Abs(r.Score-tt.want) > 0.001 {
				t.Errorf("got %f, want %f", r.Score, tt.want)
			}
		})
	}
}

func TestSoilFactorUnrecognizedSoil(t *testing.T) {
	crop := &catalog.Crop{Name: "Rice", SuitableSoilTypes: []string{"Clay", "Loamy"}}
	r := SoilFactor(Observation{SoilType: "Volcanic"}, crop)
	if r.Score != 0.2 {
		t.Errorf("unrecognized soil should get the floor score 0.2, got %f", r.Score)
	}
}

func TestSoilFactorTextureProportion(t *testing.T) {
	// Sandy shares the light texture class with one of the crop's two soils:
	// 0.2 + 0.2*(1/2) = 0.3.
	crop := &catalog.Crop{Name: "Maize", SuitableSoilTypes: []string{"Loamy", "Sandy Loam"}}
	r := SoilFactor(Observation{SoilType: "Sandy"}, crop)
	if math.Abs(r.Score-0.3) > 0.001 {
		t.Errorf("expected texture-proportional 0.3, got %f", r.Score)
	}
}

func TestSeasonFactor(t *testing.T) {
	tests := []struct {
		name       string
		cropSeason string
		obsSeason  string
		want       float64
	}{
		{"exact", "Kharif", "Kharif", 1.0},
		{"year-round crop", SeasonYearRound, "Rabi", 1.0},
		{"mismatch", "Kharif", "Rabi", 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SeasonFactor(Observation{Season: tt.obsSeason}, &catalog.Crop{Season: tt.cropSeason})
			if r.Score != tt.want {
				t.Errorf("got %f, want %f", r.Score, tt.want)
			}
		})
	}
}

func TestAirQualityPenalty(t *testing.T) {
	tests := []struct {
		aqi       float64
		sensitive bool
		want      float64
	}{
		{40, false, 1.0},
		{50, false, 1.0},
		{75, false, 0.95},
		{120, false, 0.85},
		{180, false, 0.70},
		{250, false, 0.50},
		{350, false, 0.30},
		{120, true, 0.70},  // doubled: 1 - 2*0.15
		{350, true, 0.05},  // doubled penalty floored
	}
	for _, tt := range tests {
		got := AirQualityPenalty(tt.aqi, tt.sensitive)
		if math.Abs(got-tt.want) > 0.001 {
			t.Errorf("AQI %.0f sensitive=%v: got %f, want %f", tt.aqi, tt.sensitive, got, tt.want)
		}
	}
}

func TestAirQualityPenaltyMonotonic(t *testing.T) {
	prev := 1.0
	for aqi := 0.0; aqi <= 500; aqi += 10 {
		p := AirQualityPenalty(aqi, false)
		if p > prev {
			t.Errorf("penalty increased at AQI %.0f: %f > %f", aqi, p, prev)
		}
		prev = p
	}
}
