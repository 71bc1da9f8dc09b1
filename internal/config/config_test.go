package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Unset all CROPWISE_ env vars to test pure defaults
	envVars := []string{
		"CROPWISE_PORT", "CROPWISE_METRICS_PORT", "CROPWISE_ADMIN_TOKEN",
		"CROPWISE_DATABASE_URL", "CROPWISE_EVENTS_URL", "CROPWISE_EVENTS_ENABLED",
		"CROPWISE_TOP_N", "CROPWISE_SEED_ON_START", "CROPWISE_LOG_LEVEL",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Events.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Events.URL)
	}
	if cfg.Events.Enabled {
		t.Error("expected events disabled by default")
	}
	if cfg.Scoring.TopN != 5 {
		t.Errorf("expected top_n 5, got %d", cfg.Scoring.TopN)
	}
	if !cfg.Scoring.SeedOnStart {
		t.Error("expected seed_on_start=true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}

	// Scoring weight defaults
	sw := cfg.Scoring.Weights
	expectedWeights := map[string]float64{
		"ph": 0.18, "soil_type": 0.18, "temperature": 0.22,
		"humidity": 0.15, "rainfall": 0.20, "season": 0.07,
	}
	actualWeights := map[string]float64{
		"ph": sw.PH, "soil_type": sw.SoilType, "temperature": sw.Temperature,
		"humidity": sw.Humidity, "rainfall": sw.Rainfall, "season": sw.Season,
	}
	var weightSum float64
	for name, expected := range expectedWeights {
		actual := actualWeights[name]
		if math.Abs(actual-expected) > 0.001 {
			t.Errorf("scoring weight %s: expected %f, got %f", name, expected, actual)
		}
		weightSum += actual
	}
	if math.Abs(weightSum-1.0) > 0.001 {
		t.Errorf("scoring weights sum to %f, expected 1.0", weightSum)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CROPWISE_PORT", "9000")
	t.Setenv("CROPWISE_METRICS_PORT", "9001")
	t.Setenv("CROPWISE_ADMIN_TOKEN", "secret-token")
	t.Setenv("CROPWISE_DATABASE_URL", "postgres://localhost/cropwise_test")
	t.Setenv("CROPWISE_EVENTS_URL", "nats://nats:4222")
	t.Setenv("CROPWISE_EVENTS_ENABLED", "true")
	t.Setenv("CROPWISE_TOP_N", "3")
	t.Setenv("CROPWISE_SEED_ON_START", "false")
	t.Setenv("CROPWISE_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.AdminToken != "secret-token" {
		t.Errorf("expected admin token 'secret-token', got '%s'", cfg.Server.AdminToken)
	}
	if cfg.Database.URL != "postgres://localhost/cropwise_test" {
		t.Errorf("expected database URL, got '%s'", cfg.Database.URL)
	}
	if cfg.Events.URL != "nats://nats:4222" {
		t.Errorf("expected events URL, got '%s'", cfg.Events.URL)
	}
	if !cfg.Events.Enabled {
		t.Error("expected events enabled")
	}
	if cfg.Scoring.TopN != 3 {
		t.Errorf("expected top_n 3, got %d", cfg.Scoring.TopN)
	}
	if cfg.Scoring.SeedOnStart {
		t.Error("expected seed_on_start disabled")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 8800
scoring:
  top_n: 4
  weights:
    ph: 0.18
    soil_type: 0.18
    temperature: 0.22
    humidity: 0.15
    rainfall: 0.20
    season: 0.07
logging:
  level: warn
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	os.Unsetenv("CROPWISE_PORT")
	os.Unsetenv("CROPWISE_TOP_N")
	os.Unsetenv("CROPWISE_LOG_LEVEL")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8800 {
		t.Errorf("expected port 8800 from file, got %d", cfg.Server.Port)
	}
	if cfg.Scoring.TopN != 4 {
		t.Errorf("expected top_n 4 from file, got %d", cfg.Scoring.TopN)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level 'warn' from file, got '%s'", cfg.Logging.Level)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port, got %d", cfg.Server.MetricsPort)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
