package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cropai/internal/domain/entities"
	"cropai/internal/ports/output"
)

var _ output.PredictionRepository = (*PredictionRepository)(nil)

type PredictionRepository struct {
	pool *pgxpool.Pool
}

func NewPredictionRepository(pool *pgxpool.Pool) *PredictionRepository {
	return &PredictionRepository{pool: pool}
}

func (r *PredictionRepository) Create(ctx context.Context, prediction *entities.Prediction) error {
	recommendations, err := json.Marshal(prediction.Recommendations)
	if err != nil {
		return fmt.Errorf("encode recommendations: %w", err)
	}

	var userID, fieldID any
	if prediction.UserID != 0 {
		userID = prediction.UserID
	}
	if prediction.FieldID != 0 {
		fieldID = prediction.FieldID
	}

	err = r.pool.QueryRow(ctx, `
		INSERT INTO predictions (user_id, field_id, crop_type, predicted_yield, confidence, recommendations)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		userID, fieldID, prediction.CropType, prediction.PredictedYield,
		prediction.Confidence, recommendations,
	).Scan(&prediction.ID, &prediction.CreatedAt)
	if err != nil {
		return fmt.Errorf("create prediction: %w", err)
	}
	return nil
}

func (r *PredictionRepository) FindRecentByUserID(ctx context.Context, userID uint, limit int) ([]entities.Prediction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, COALESCE(user_id, 0), COALESCE(field_id, 0), crop_type,
			predicted_yield, confidence, recommendations, created_at
		FROM predictions WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("find predictions: %w", err)
	}
	defer rows.Close()

	predictions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Prediction, error) {
		var p entities.Prediction
		var recommendations []byte
		if err := row.Scan(&p.ID, &p.UserID, &p.FieldID, &p.CropType,
			&p.PredictedYield, &p.Confidence, &recommendations, &p.CreatedAt); err != nil {
			return p, err
		}
		if len(recommendations) > 0 {
			if err := json.Unmarshal(recommendations, &p.Recommendations); err != nil {
				return p, fmt.Errorf("decode recommendations: %w", err)
			}
		}
		return p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan predictions: %w", err)
	}
	return predictions, nil
}
