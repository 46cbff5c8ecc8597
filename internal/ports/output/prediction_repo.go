package output

import (
	"context"

	"cropai/internal/domain/entities"
)

type PredictionRepository interface {
	Create(ctx context.Context, prediction *entities.Prediction) error
	FindRecentByUserID(ctx context.Context, userID uint, limit int) ([]entities.Prediction, error)
}
