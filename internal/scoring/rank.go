package scoring

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Verdantly-Ag/Cropwise/internal/catalog"
)

// DefaultTopN is how many recommendations a ranking call returns unless the
// caller asks otherwise.
const DefaultTopN = 5

// ErrEmptyCatalog signals that there was nothing to rank. Callers should
// surface it as a service-availability condition, not an empty answer.
var ErrEmptyCatalog = errors.New("no candidate crops supplied")

// ValidationError carries the blocking field errors of a rejected
// observation. No partial ranking accompanies it.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Issues))
	for _, iss := range e.Issues {
		fields = append(fields, iss.Field)
	}
	return "invalid observation: " + strings.Join(fields, ", ")
}

// Recommendation is one ranked entry of the engine's output.
type Recommendation struct {
	Name           string `json:"name"`
	Confidence     int    `json:"confidence"`
	Reason         string `json:"reason"`
	Description    string `json:"description,omitempty"`
	GrowthDuration int    `json:"growth_duration"`
}

// Result bundles the ranked recommendations with the non-blocking warnings
// and the full per-crop breakdown, in ranking order.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	Warnings        []Issue          `json:"warnings,omitempty"`
	Scores          []CropScore      `json:"scores,omitempty"`

	// Faults counts malformed crop profiles that were isolated during this
	// pass. Not part of the response payload.
	Faults int `json:"-"`
}

// Ranker scores every candidate crop and produces the ordered top-N.
type Ranker struct {
	scorer *Scorer
	logger *slog.Logger
}

func NewRanker(scorer *Scorer, logger *slog.Logger) *Ranker {
	return &Ranker{scorer: scorer, logger: logger}
}

// Recommend validates the observation, scores each candidate, and returns
// the top-N by confidence. A malformed single crop profile yields a
// zero-confidence entry rather than aborting the batch; ties keep candidate
// insertion order, so identical input always produces identical output.
func (r *Ranker) Recommend(obs Observation, crops []*catalog.Crop, topN int) (*Result, error) {
	ok, issues := Validate(obs)
	if !ok {
		return nil, &ValidationError{Issues: Errors(issues)}
	}
	if len(crops) == 0 {
		return nil, ErrEmptyCatalog
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	type entry struct {
		crop  *catalog.Crop
		score CropScore
	}
	entries := make([]entry, 0, len(crops))
	faults := 0
	for _, crop := range crops {
		if err := crop.Validate(); err != nil {
			r.logger.Warn("skipping malformed crop profile", "crop", crop.Name, "error", err)
			faults++
			entries = append(entries, entry{crop: crop, score: CropScore{
				CropName:   crop.Name,
				Category:   CategoryGeneral,
				Confidence: 0,
				Reasons:    []string{fmt.Sprintf("Profile error: %v", err)},
			}})
			continue
		}
		entries = append(entries, entry{crop: crop, score: r.scorer.ScoreCrop(obs, crop)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score.Confidence > entries[j].score.Confidence
	})
	if len(entries) > topN {
		entries = entries[:topN]
	}

	result := &Result{
		Recommendations: make([]Recommendation, 0, len(entries)),
		Warnings:        Warnings(issues),
		Scores:          make([]CropScore, 0, len(entries)),
		Faults:          faults,
	}
	for _, e := range entries {
		result.Recommendations = append(result.Recommendations, Recommendation{
			Name:           e.crop.Name,
			Confidence:     e.score.DisplayConfidence(),
			Reason:         strings.Join(e.score.Reasons, ", "),
			Description:    e.crop.Description,
			GrowthDuration: e.crop.GrowthDurationDays,
		})
		result.Scores = append(result.Scores, e.score)
	}
	return result, nil
}
