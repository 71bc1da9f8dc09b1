package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Verdantly-Ag/Cropwise/internal/api"
	"github.com/Verdantly-Ag/Cropwise/internal/catalog"
	"github.com/Verdantly-Ag/Cropwise/internal/config"
	"github.com/Verdantly-Ag/Cropwise/internal/events"
	"github.com/Verdantly-Ag/Cropwise/internal/market"
	"github.com/Verdantly-Ag/Cropwise/internal/scoring"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.Logging.Level)}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Catalog store: Postgres when configured, otherwise in-memory.
	var store catalog.Store
	if cfg.Database.URL != "" {
		db, err := catalog.NewPostgresStore(ctx, cfg.Database.URL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		store = db
		logger.Info("connected to database")
	} else {
		mem := catalog.NewMemoryStore()
		if cfg.Scoring.SeedOnStart {
			if err := mem.SeedDefaults(); err != nil {
				logger.Error("failed to seed catalog", "error", err)
				os.Exit(1)
			}
			logger.Info("seeded in-memory catalog")
		}
		store = mem
	}
	defer store.Close()

	// Events (optional)
	var eventsClient events.Client
	if cfg.Events.Enabled && cfg.Events.URL != "" {
		ec, err := events.NewNATSClient(ctx, cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to event bus, running without events", "error", err)
		} else {
			eventsClient = ec
			defer ec.Close()
			logger.Info("connected to event bus")
		}
	}

	weights := scoring.WeightSet{
		PH:          cfg.Scoring.Weights.PH,
		SoilType:    cfg.Scoring.Weights.SoilType,
		Temperature: cfg.Scoring.Weights.Temperature,
		Humidity:    cfg.Scoring.Weights.Humidity,
		Rainfall:    cfg.Scoring.Weights.Rainfall,
		Season:      cfg.Scoring.Weights.Season,
	}
	if err := weights.Validate(); err != nil {
		logger.Error("invalid scoring weights", "error", err)
		os.Exit(1)
	}
	ranker := scoring.NewRanker(scoring.NewScorer(weights, logger), logger)
	trends := market.NewEngine(logger)
	metrics := api.NewMetrics()

	// API server
	router := api.NewRouter(store, ranker, trends, eventsClient, metrics, cfg.Server.AdminToken, cfg.Scoring.TopN, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Metrics server
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: api.NewMetricsRouter(),
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
