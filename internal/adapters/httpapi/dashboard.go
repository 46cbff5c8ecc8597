package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
)

type predictionView struct {
	ID             uint      `json:"id"`
	CropType       string    `json:"crop_type"`
	PredictedYield float64   `json:"predicted_yield"`
	Confidence     float64   `json:"confidence"`
	CreatedAt      time.Time `json:"created_at"`
}

func (s *Server) handleDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	userID := sessionRecord(c).UserID

	user, err := s.accounts.GetUser(ctx, userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	fields, err := s.fields.GetFieldsByUserID(ctx, userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	fieldViews := make([]fieldView, 0, len(fields))
	for _, f := range fields {
		fieldViews = append(fieldViews, viewField(f))
	}

	recent, err := s.predictions.RecentPredictions(ctx, userID, 5)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	predictionViews := make([]predictionView, 0, len(recent))
	for _, p := range recent {
		predictionViews = append(predictionViews, predictionView{
			ID:             p.ID,
			CropType:       p.CropType,
			PredictedYield: p.PredictedYield,
			Confidence:     p.Confidence,
			CreatedAt:      p.CreatedAt,
		})
	}

	respondOK(c, gin.H{
		"welcome":     translate(c, "messages.welcome", map[string]any{"name": displayName(user)}),
		"user":        viewUser(user),
		"fields":      fieldViews,
		"predictions": predictionViews,
	})
}
