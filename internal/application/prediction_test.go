package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cropai/internal/domain"
	"cropai/internal/domain/entities"
)

type fakePredictionRepo struct {
	created   []*entities.Prediction
	createErr error
	recent    []entities.Prediction
}

func (f *fakePredictionRepo) Create(_ context.Context, p *entities.Prediction) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, p)
	return nil
}

func (f *fakePredictionRepo) FindRecentByUserID(_ context.Context, _ uint, limit int) ([]entities.Prediction, error) {
	if limit < len(f.recent) {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func optimalInput() entities.YieldInput {
	return entities.YieldInput{
		CropType:       "rice",
		AreaHectares:   2,
		RainfallMM:     1500,
		TemperatureC:   27,
		SoilPH:         6.5,
		FertilizerKgHa: 60,
		PestControl:    8,
	}
}

func TestPredictPersistsAndReturnsResult(t *testing.T) {
	repo := &fakePredictionRepo{}
	svc := NewPredictionService(repo, zap.NewNop())

	result, err := svc.Predict(context.Background(), 42, optimalInput())
	require.NoError(t, err)

	assert.InDelta(t, 5.0, result.Estimate.Yield, 1e-9)
	assert.InDelta(t, 0.95, result.Estimate.Confidence, 1e-9)
	assert.NotEmpty(t, result.Recommendations)
	assert.Equal(t, "rice", result.Market.CropType)

	require.Len(t, repo.created, 1)
	assert.Equal(t, uint(42), repo.created[0].UserID)
	assert.Equal(t, result.Recommendations, repo.created[0].Recommendations)
}

func TestPredictSurvivesPersistenceFailure(t *testing.T) {
	repo := &fakePredictionRepo{createErr: errors.New("db down")}
	svc := NewPredictionService(repo, zap.NewNop())

	result, err := svc.Predict(context.Background(), 1, optimalInput())
	require.NoError(t, err)
	assert.Greater(t, result.Estimate.Yield, 0.0)
}

func TestPredictRejectsUnknownCrop(t *testing.T) {
	svc := NewPredictionService(&fakePredictionRepo{}, zap.NewNop())

	in := optimalInput()
	in.CropType = "quinoa"
	_, err := svc.Predict(context.Background(), 1, in)
	assert.ErrorIs(t, err, domain.ErrUnknownCrop)
}

func TestRecentPredictionsDefaultsLimit(t *testing.T) {
	repo := &fakePredictionRepo{recent: make([]entities.Prediction, 10)}
	svc := NewPredictionService(repo, zap.NewNop())

	got, err := svc.RecentPredictions(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}
