package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cropai/internal/domain/agronomy"
	"cropai/internal/domain/entities"
	"cropai/internal/ports/input"
	"cropai/internal/ports/output"
)

var _ input.PredictionUseCase = (*PredictionService)(nil)

type PredictionService struct {
	predictions output.PredictionRepository
	log         *zap.Logger
}

func NewPredictionService(predictions output.PredictionRepository, log *zap.Logger) *PredictionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PredictionService{predictions: predictions, log: log}
}

func (s *PredictionService) Predict(ctx context.Context, userID uint, in entities.YieldInput) (*input.PredictionResult, error) {
	estimate, err := agronomy.EstimateYield(in)
	if err != nil {
		return nil, err
	}
	recommendations := agronomy.Recommend(in, estimate.Yield)
	market := agronomy.MarketOutlook(in.CropType, estimate.Yield, in.AreaHectares)

	prediction := &entities.Prediction{
		UserID:          userID,
		CropType:        in.CropType,
		PredictedYield:  estimate.Yield,
		Confidence:      estimate.Confidence,
		Recommendations: recommendations,
	}
	if err := s.predictions.Create(ctx, prediction); err != nil {
		// The estimate is still useful to the caller; persistence is
		// reported but does not void the prediction.
		s.log.Warn("prediction not persisted", zap.Error(err))
	}

	s.log.Info("yield predicted",
		zap.String("crop", in.CropType),
		zap.Float64("yield", estimate.Yield),
		zap.Float64("confidence", estimate.Confidence),
		zap.Uint("user_id", userID))

	return &input.PredictionResult{
		Prediction:      prediction,
		Estimate:        estimate,
		Recommendations: recommendations,
		Market:          market,
	}, nil
}

func (s *PredictionService) RecentPredictions(ctx context.Context, userID uint, limit int) ([]entities.Prediction, error) {
	if limit <= 0 {
		limit = 5
	}
	predictions, err := s.predictions.FindRecentByUserID(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent predictions: %w", err)
	}
	return predictions, nil
}
