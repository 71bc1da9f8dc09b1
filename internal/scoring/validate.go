package scoring

import (
	"fmt"
	"math"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one field-level validation finding. Errors block scoring;
// warnings ride along with successful output.
type Issue struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Validate checks an observation for agronomic plausibility. It returns
// false iff at least one error-severity issue exists. All range checks are
// inclusive. Out-of-range temperature is only a warning: extreme-climate
// crops exist, so the reading proceeds flagged rather than rejected.
func Validate(obs Observation) (bool, []Issue) {
	var issues []Issue

	addErr := func(field, msg string) {
		issues = append(issues, Issue{Field: field, Message: msg, Severity: SeverityError})
	}
	addWarn := func(field, msg string) {
		issues = append(issues, Issue{Field: field, Message: msg, Severity: SeverityWarning})
	}

	checkNumeric := func(field string, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			addErr(field, "must be a finite number")
			return false
		}
		return true
	}

	if checkNumeric("soil_ph", obs.SoilPH) && (obs.SoilPH < 0 || obs.SoilPH > 14) {
		addErr("soil_ph", fmt.Sprintf("must be between 0 and 14, got %.2f", obs.SoilPH))
	}
	if checkNumeric("temperature", obs.Temperature) && (obs.Temperature < -10 || obs.Temperature > 50) {
		addWarn("temperature", fmt.Sprintf("%.1f°C is outside the typical -10 to 50 range", obs.Temperature))
	}
	if checkNumeric("humidity", obs.Humidity) && (obs.Humidity < 0 || obs.Humidity > 100) {
		addErr("humidity", fmt.Sprintf("must be between 0 and 100, got %.2f", obs.Humidity))
	}
	if checkNumeric("rainfall", obs.Rainfall) && (obs.Rainfall < 0 || obs.Rainfall > 5000) {
		addErr("rainfall", fmt.Sprintf("must be between 0 and 5000 mm, got %.2f", obs.Rainfall))
	}
	if checkNumeric("air_quality", obs.AirQuality) && (obs.AirQuality < 0 || obs.AirQuality > 500) {
		addErr("air_quality", fmt.Sprintf("AQI must be between 0 and 500, got %.2f", obs.AirQuality))
	}

	if obs.SoilType == "" {
		addErr("soil_type", "soil type required")
	} else if !recognizedSoil(obs.SoilType) {
		addWarn("soil_type", fmt.Sprintf("unrecognized soil type %q, scoring by texture similarity", obs.SoilType))
	}

	if obs.Season == "" {
		addErr("season", "season required")
	} else if !recognizedSeason(obs.Season) {
		addWarn("season", fmt.Sprintf("unrecognized season %q", obs.Season))
	}

	for _, iss := range issues {
		if iss.Severity == SeverityError {
			return false, issues
		}
	}
	return true, issues
}

// Errors filters the error-severity issues out of a validation result.
func Errors(issues []Issue) []Issue {
	var out []Issue
	for _, iss := range issues {
		if iss.Severity == SeverityError {
			out = append(out, iss)
		}
	}
	return out
}

// Warnings filters the warning-severity issues out of a validation result.
func Warnings(issues []Issue) []Issue {
	var out []Issue
	for _, iss := range issues {
		if iss.Severity == SeverityWarning {
			out = append(out, iss)
		}
	}
	return out
}
