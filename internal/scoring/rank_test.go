package scoring

import (
	"errors"
	"strings"
	"testing"

	"github.com/Verdantly-Ag/Cropwise/internal/catalog"
)

func newTestRanker() *Ranker {
	return NewRanker(NewScorer(DefaultWeights(), discardLogger()), discardLogger())
}

func TestRecommendKharifScenario(t *testing.T) {
	r := newTestRanker()
	obs := Observation{
		SoilPH:      6.5,
		SoilType:    "Loamy",
		Temperature: 27,
		Humidity:    75,
		AirQuality:  40,
		Rainfall:    1500,
		Season:      "Kharif",
	}

	result, err := r.Recommend(obs, catalog.SeedCrops(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Recommendations) != 5 {
		t.Fatalf("expected 5 recommendations, got %d", len(result.Recommendations))
	}

	top := result.Recommendations[0]
	if top.Name != "Rice" {
		t.Errorf("expected Rice first, got %s", top.Name)
	}
	if top.Confidence <= 80 {
		t.Errorf("expected Rice confidence above 80, got %d", top.Confidence)
	}
	for _, phrase := range []string{"Optimal pH range", "Ideal temperature", "Suitable humidity", "Adequate rainfall", "Compatible soil", "Perfect season"} {
		if !strings.Contains(top.Reason, phrase) {
			t.Errorf("expected reason to include %q, got %q", phrase, top.Reason)
		}
	}
	if top.GrowthDuration != 120 {
		t.Errorf("expected growth duration copied from profile, got %d", top.GrowthDuration)
	}
}

func TestRecommendRejectsInvalidObservation(t *testing.T) {
	r := newTestRanker()
	obs := validObservation()
	obs.SoilPH = 15

	result, err := r.Recommend(obs, catalog.SeedCrops(), 5)
	if result != nil {
		t.Error("no partial ranking on validation failure")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Issues) != 1 || verr.Issues[0].Field != "soil_ph" {
		t.Errorf("expected a single soil_ph error, got %v", verr.Issues)
	}
}

func TestRecommendCarriesWarnings(t *testing.T) {
	r := newTestRanker()
	obs := validObservation()
	obs.Temperature = 60

	result, err := r.Recommend(obs, catalog.SeedCrops(), 5)
	if err != nil {
		t.Fatalf("warnings must not block: %v", err)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Field != "temperature" {
		t.Errorf("expected a temperature warning, got %v", result.Warnings)
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	r := newTestRanker()
	_, err := r.Recommend(validObservation(), nil, 5)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestRecommendTopNTruncation(t *testing.T) {
	r := newTestRanker()
	obs := validObservation()

	full, err := r.Recommend(obs, catalog.SeedCrops(), len(catalog.SeedCrops()))
	if err != nil {
		t.Fatal(err)
	}
	top3, err := r.Recommend(obs, catalog.SeedCrops(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(top3.Recommendations) != 3 {
		t.Fatalf("expected exactly 3 entries, got %d", len(top3.Recommendations))
	}
	for i := range top3.Recommendations {
		if top3.Recommendations[i] != full.Recommendations[i] {
			t.Errorf("top-3 entry %d diverges from full ranking", i)
		}
	}
	for i := 1; i < len(full.Recommendations); i++ {
		if full.Recommendations[i].Confidence > full.Recommendations[i-1].Confidence {
			t.Error("ranking must be sorted descending by confidence")
		}
	}
}

func TestRecommendDefaultTopN(t *testing.T) {
	r := newTestRanker()
	result, err := r.Recommend(validObservation(), catalog.SeedCrops(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Recommendations) != DefaultTopN {
		t.Errorf("expected default top-%d, got %d", DefaultTopN, len(result.Recommendations))
	}
}

func TestRecommendStableTieBreak(t *testing.T) {
	r := newTestRanker()
	a := riceCrop()
	a.Name = "Rice A"
	a.Category = "rice_like"
	b := riceCrop()
	b.Name = "Rice B"
	b.Category = "rice_like"

	result, err := r.Recommend(validObservation(), []*catalog.Crop{a, b}, 5)
	if err != nil {
		t.Fatal(err)
	}
	if result.Recommendations[0].Name != "Rice A" || result.Recommendations[1].Name != "Rice B" {
		t.Errorf("identical confidence must keep insertion order, got %s then %s",
			result.Recommendations[0].Name, result.Recommendations[1].Name)
	}
	if result.Recommendations[0].Confidence != result.Recommendations[1].Confidence {
		t.Errorf("identical profiles should tie, got %d vs %d",
			result.Recommendations[0].Confidence, result.Recommendations[1].Confidence)
	}
}

func TestRecommendIsolatesMalformedProfile(t *testing.T) {
	r := newTestRanker()
	broken := riceCrop()
	broken.Name = "Broken"
	broken.OptimalPHMin = 9
	broken.OptimalPHMax = 5 // inverted

	result, err := r.Recommend(validObservation(), []*catalog.Crop{broken, riceCrop()}, 5)
	if err != nil {
		t.Fatalf("one malformed profile must not abort the batch: %v", err)
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Recommendations))
	}
	last := result.Recommendations[1]
	if last.Name != "Broken" || last.Confidence != 0 {
		t.Errorf("malformed profile should rank last with zero confidence, got %+v", last)
	}
	if !strings.Contains(last.Reason, "Profile error") {
		t.Errorf("expected a profile error reason, got %q", last.Reason)
	}
}

func TestRecommendIdempotent(t *testing.T) {
	r := newTestRanker()
	obs := Observation{
		SoilPH: 6.2, SoilType: "Alluvial", Temperature: 22, Humidity: 64,
		AirQuality: 110, Rainfall: 700, Season: "Rabi",
	}
	first, err := r.Recommend(obs, catalog.SeedCrops(), 5)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		again, err := r.Recommend(obs, catalog.SeedCrops(), 5)
		if err != nil {
			t.Fatal(err)
		}
		for j := range first.Recommendations {
			if first.Recommendations[j] != again.Recommendations[j] {
				t.Fatalf("ranking changed between identical calls at entry %d", j)
			}
		}
	}
}
