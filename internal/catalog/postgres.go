package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const cropColumns = `id, name, description, growth_duration_days,
	optimal_ph_min, optimal_ph_max, optimal_temp_min, optimal_temp_max,
	optimal_humidity_min, optimal_humidity_max, optimal_rainfall_min, optimal_rainfall_max,
	suitable_soil_types, season, category,
	created_at, updated_at`

func (s *PostgresStore) CreateCrop(ctx context.Context, crop *Crop) error {
	if err := crop.Validate(); err != nil {
		return err
	}
	return s.pool.QueryRow(ctx, `
		INSERT INTO crops (name, description, growth_duration_days,
			optimal_ph_min, optimal_ph_max, optimal_temp_min, optimal_temp_max,
			optimal_humidity_min, optimal_humidity_max, optimal_rainfall_min, optimal_rainfall_max,
			suitable_soil_types, season, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at`,
		crop.Name, crop.Description, crop.GrowthDurationDays,
		crop.OptimalPHMin, crop.OptimalPHMax, crop.OptimalTempMin, crop.OptimalTempMax,
		crop.OptimalHumidityMin, crop.OptimalHumidityMax, crop.OptimalRainfallMin, crop.OptimalRainfallMax,
		crop.SuitableSoilTypes, crop.Season, crop.Category,
	).Scan(&crop.ID, &crop.CreatedAt, &crop.UpdatedAt)
}

func (s *PostgresStore) GetCrop(ctx context.Context, id uuid.UUID) (*Crop, error) {
	c := &Crop{}
	err := s.pool.QueryRow(ctx, `
		SELECT `+cropColumns+`
		FROM crops WHERE id = $1`, id,
	).Scan(
		&c.ID, &c.Name, &c.Description, &c.GrowthDurationDays,
		&c.OptimalPHMin, &c.OptimalPHMax, &c.OptimalTempMin, &c.OptimalTempMax,
		&c.OptimalHumidityMin, &c.OptimalHumidityMax, &c.OptimalRainfallMin, &c.OptimalRainfallMax,
		&c.SuitableSoilTypes, &c.Season, &c.Category,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *PostgresStore) ListCrops(ctx context.Context, filter CropFilter) ([]*Crop, error) {
	query := `SELECT ` + cropColumns + ` FROM crops WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.Season != "" {
		n++
		query += fmt.Sprintf(" AND season = $%d", n)
		args = append(args, filter.Season)
	}
	if filter.SoilType != "" {
		n++
		query += fmt.Sprintf(" AND $%d ILIKE ANY (suitable_soil_types)", n)
		args = append(args, filter.SoilType)
	}

	query += " ORDER BY created_at ASC"

	if filter.Limit > 0 {
		n++
		query += fmt.Sprintf(" LIMIT $%d", n)
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCrops(rows)
}

func (s *PostgresStore) UpdateCrop(ctx context.Context, crop *Crop) error {
	if err := crop.Validate(); err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, `
		UPDATE crops SET
			name = $2, description = $3, growth_duration_days = $4,
			optimal_ph_min = $5, optimal_ph_max = $6,
			optimal_temp_min = $7, optimal_temp_max = $8,
			optimal_humidity_min = $9, optimal_humidity_max = $10,
			optimal_rainfall_min = $11, optimal_rainfall_max = $12,
			suitable_soil_types = $13, season = $14, category = $15,
			updated_at = NOW()
		WHERE id = $1`,
		crop.ID, crop.Name, crop.Description, crop.GrowthDurationDays,
		crop.OptimalPHMin, crop.OptimalPHMax,
		crop.OptimalTempMin, crop.OptimalTempMax,
		crop.OptimalHumidityMin, crop.OptimalHumidityMax,
		crop.OptimalRainfallMin, crop.OptimalRainfallMax,
		crop.SuitableSoilTypes, crop.Season, crop.Category,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCropNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteCrop(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM crops WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCropNotFound
	}
	return nil
}

const recommendationColumns = `id, soil_ph, soil_type, temperature, humidity,
	air_quality, rainfall, season,
	recommended_crops, confidence_score, warnings, scoring_factors,
	created_at`

func (s *PostgresStore) CreateRecommendation(ctx context.Context, rec *RecommendationRecord) error {
	cropsJSON, _ := json.Marshal(rec.RecommendedCrops)
	factorsJSON, _ := json.Marshal(rec.ScoringFactors)

	return s.pool.QueryRow(ctx, `
		INSERT INTO recommendations (soil_ph, soil_type, temperature, humidity,
			air_quality, rainfall, season,
			recommended_crops, confidence_score, warnings, scoring_factors)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`,
		rec.SoilPH, rec.SoilType, rec.Temperature, rec.Humidity,
		rec.AirQuality, rec.Rainfall, rec.Season,
		cropsJSON, rec.ConfidenceScore, rec.Warnings, factorsJSON,
	).Scan(&rec.ID, &rec.CreatedAt)
}

func (s *PostgresStore) GetRecommendation(ctx context.Context, id uuid.UUID) (*RecommendationRecord, error) {
	r := &RecommendationRecord{}
	var cropsJSON, factorsJSON []byte
	err := s.pool.QueryRow(ctx, `
		SELECT `+recommendationColumns+`
		FROM recommendations WHERE id = $1`, id,
	).Scan(
		&r.ID, &r.SoilPH, &r.SoilType, &r.Temperature, &r.Humidity,
		&r.AirQuality, &r.Rainfall, &r.Season,
		&cropsJSON, &r.ConfidenceScore, &r.Warnings, &factorsJSON,
		&r.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if cropsJSON != nil {
		_ = json.Unmarshal(cropsJSON, &r.RecommendedCrops)
	}
	if factorsJSON != nil {
		_ = json.Unmarshal(factorsJSON, &r.ScoringFactors)
	}
	return r, nil
}

func (s *PostgresStore) ListRecommendations(ctx context.Context, limit int) ([]*RecommendationRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx, `
		SELECT `+recommendationColumns+`
		FROM recommendations
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*RecommendationRecord
	for rows.Next() {
		r := &RecommendationRecord{}
		var cropsJSON, factorsJSON []byte
		if err := rows.Scan(
			&r.ID, &r.SoilPH, &r.SoilType, &r.Temperature, &r.Humidity,
			&r.AirQuality, &r.Rainfall, &r.Season,
			&cropsJSON, &r.ConfidenceScore, &r.Warnings, &factorsJSON,
			&r.CreatedAt,
		); err != nil {
			return nil, err
		}
		if cropsJSON != nil {
			_ = json.Unmarshal(cropsJSON, &r.RecommendedCrops)
		}
		if factorsJSON != nil {
			_ = json.Unmarshal(factorsJSON, &r.ScoringFactors)
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

func scanCrops(rows pgx.Rows) ([]*Crop, error) {
	var crops []*Crop
	for rows.Next() {
		c := &Crop{}
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.GrowthDurationDays,
			&c.OptimalPHMin, &c.OptimalPHMax, &c.OptimalTempMin, &c.OptimalTempMax,
			&c.OptimalHumidityMin, &c.OptimalHumidityMax, &c.OptimalRainfallMin, &c.OptimalRainfallMax,
			&c.SuitableSoilTypes, &c.Season, &c.Category,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		crops = append(crops, c)
	}
	return crops, rows.Err()
}
