package events

import "time"

type RecommendationCreatedEvent struct {
	RecommendationID string    `json:"recommendation_id"`
	Season           string    `json:"season"`
	SoilType         string    `json:"soil_type"`
	TopCrop          string    `json:"top_crop"`
	Confidence       int       `json:"confidence"`
	WarningCount     int       `json:"warning_count"`
	Timestamp        time.Time `json:"timestamp"`
}

type CropChangedEvent struct {
	CropID string `json:"crop_id"`
	Name   string `json:"name"`
	Action string `json:"action"` // created, updated, deleted
}

type MarketTrendEvent struct {
	Crop           string  `json:"crop"`
	Market         string  `json:"market"`
	Trend          string  `json:"trend"`
	ChangePercent  float64 `json:"change_percent"`
	ProjectedPrice float64 `json:"projected_price"`
}
