package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrCropNotFound is returned by mutating store operations when the target
// crop does not exist.
var ErrCropNotFound = errors.New("crop not found")

// Crop is a reference profile describing the agronomic ranges a crop grows
// best in. Profiles are owned by the catalog and read-only to the scoring
// engine.
type Crop struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	GrowthDurationDays int       `json:"growth_duration_days"`

	OptimalPHMin       float64 `json:"optimal_ph_min"`
	OptimalPHMax       float64 `json:"optimal_ph_max"`
	OptimalTempMin     float64 `json:"optimal_temp_min"`
	OptimalTempMax     float64 `json:"optimal_temp_max"`
	OptimalHumidityMin float64 `json:"optimal_humidity_min"`
	OptimalHumidityMax float64 `json:"optimal_humidity_max"`
	OptimalRainfallMin float64 `json:"optimal_rainfall_min"`
	OptimalRainfallMax float64 `json:"optimal_rainfall_max"`

	SuitableSoilTypes []string `json:"suitable_soil_types"`
	Season            string   `json:"season"`

	// Optional category tag (rice_like, spice_like, millet_like). When empty
	// the engine falls back to its name lookup table.
	Category string `json:"category,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks a profile for the data-quality faults the scoring engine
// refuses to default around: missing name, inverted or absent optimal ranges.
func (c *Crop) Validate() error {
	if c.Name == "" {
		return errors.New("crop name required")
	}
	ranges := []struct {
		field    string
		min, max float64
	}{
		{"ph", c.OptimalPHMin, c.OptimalPHMax},
		{"temperature", c.OptimalTempMin, c.OptimalTempMax},
		{"humidity", c.OptimalHumidityMin, c.OptimalHumidityMax},
		{"rainfall", c.OptimalRainfallMin, c.OptimalRainfallMax},
	}
	for _, r := range ranges {
		if r.min > r.max {
			return fmt.Errorf("%s range inverted: min %.2f > max %.2f", r.field, r.min, r.max)
		}
	}
	if c.OptimalPHMax == 0 && c.OptimalTempMax == 0 && c.OptimalHumidityMax == 0 && c.OptimalRainfallMax == 0 {
		return errors.New("optimal ranges missing")
	}
	if len(c.SuitableSoilTypes) == 0 {
		return errors.New("suitable soil types missing")
	}
	if c.Season == "" {
		return errors.New("season missing")
	}
	return nil
}

// RecommendedCrop is one ranked entry as persisted with a recommendation
// record. The reason field is the comma-joined phrase list shown to farmers.
type RecommendedCrop struct {
	Name               string `json:"name"`
	Confidence         int    `json:"confidence"`
	Reason             string `json:"reason"`
	Description        string `json:"description,omitempty"`
	GrowthDurationDays int    `json:"growth_duration"`
}

// RecommendationRecord captures one scoring call: the observation that was
// submitted, the ranked output, and the per-crop factor breakdown kept for
// the explain endpoint.
type RecommendationRecord struct {
	ID uuid.UUID `json:"id"`

	SoilPH      float64 `json:"soil_ph"`
	SoilType    string  `json:"soil_type"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	AirQuality  float64 `json:"air_quality"`
	Rainfall    float64 `json:"rainfall"`
	Season      string  `json:"season"`

	RecommendedCrops []RecommendedCrop      `json:"recommended_crops"`
	ConfidenceScore  int                    `json:"confidence_score"`
	Warnings         []string               `json:"warnings,omitempty"`
	ScoringFactors   map[string]interface{} `json:"scoring_factors,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type CropFilter struct {
	Season   string
	SoilType string
	Limit    int
	Offset   int
}

type Store interface {
	CreateCrop(ctx context.Context, crop *Crop) error
	GetCrop(ctx context.Context, id uuid.UUID) (*Crop, error)
	ListCrops(ctx context.Context, filter CropFilter) ([]*Crop, error)
	UpdateCrop(ctx context.Context, crop *Crop) error
	DeleteCrop(ctx context.Context, id uuid.UUID) error

	CreateRecommendation(ctx context.Context, rec *RecommendationRecord) error
	GetRecommendation(ctx context.Context, id uuid.UUID) (*RecommendationRecord, error)
	ListRecommendations(ctx context.Context, limit int) ([]*RecommendationRecord, error)

	Close() error
}
