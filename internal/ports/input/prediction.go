package input

import (
	"context"

	"cropai/internal/domain/agronomy"
	"cropai/internal/domain/entities"
)

// PredictionResult bundles everything the prediction page shows.
type PredictionResult struct {
	Prediction      *entities.Prediction
	Estimate        agronomy.Estimate
	Recommendations []entities.Recommendation
	Market          entities.MarketInsight
}

type PredictionUseCase interface {
	// Predict estimates the yield for the given inputs, derives
	// recommendations and market insight, and persists the prediction.
	// userID 0 records an anonymous prediction.
	Predict(ctx context.Context, userID uint, in entities.YieldInput) (*PredictionResult, error)
	RecentPredictions(ctx context.Context, userID uint, limit int) ([]entities.Prediction, error)
}
