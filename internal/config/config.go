package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Events   EventsConfig   `yaml:"events"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type EventsConfig struct {
	URL     string `yaml:"url"`
	Enabled bool   `yaml:"enabled"`
}

type ScoringConfig struct {
	Weights     ScoringWeights `yaml:"weights"`
	TopN        int            `yaml:"top_n"`
	SeedOnStart bool           `yaml:"seed_on_start"`
}

type ScoringWeights struct {
	PH          float64 `yaml:"ph"`
	SoilType    float64 `yaml:"soil_type"`
	Temperature float64 `yaml:"temperature"`
	Humidity    float64 `yaml:"humidity"`
	Rainfall    float64 `yaml:"rainfall"`
	Season      float64 `yaml:"season"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Events: EventsConfig{
			URL:     "nats://localhost:4222",
			Enabled: false,
		},
		Scoring: ScoringConfig{
			Weights: ScoringWeights{
				PH:          0.18,
				SoilType:    0.18,
				Temperature: 0.22,
				Humidity:    0.15,
				Rainfall:    0.20,
				Season:      0.07,
			},
			TopN:        5,
			SeedOnStart: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CROPWISE_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("CROPWISE_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("CROPWISE_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("CROPWISE_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("CROPWISE_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("CROPWISE_EVENTS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Events.Enabled = b
		}
	}
	if v := os.Getenv("CROPWISE_TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scoring.TopN = n
		}
	}
	if v := os.Getenv("CROPWISE_SEED_ON_START"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Scoring.SeedOnStart = b
		}
	}
	if v := os.Getenv("CROPWISE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
