package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cropai/internal/domain/entities"
)

type predictRequest struct {
	CropType         string  `json:"crop_type" binding:"required,crop"`
	AreaHectares     float64 `json:"area" binding:"required,gt=0"`
	RainfallMM       float64 `json:"rainfall" binding:"required,gt=0"`
	TemperatureC     float64 `json:"temperature" binding:"required"`
	SoilPH           float64 `json:"soil_ph" binding:"required,gt=0,lte=14"`
	FertilizerKgHa   float64 `json:"fertilizer" binding:"gte=0"`
	PestControl      float64 `json:"pest_control" binding:"required,gte=1,lte=10"`
	SoilCondition    string  `json:"soil_condition"`
	WeatherCondition string  `json:"weather_condition"`
}

type recommendationView struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
	Action   string `json:"action"`
}

func (s *Server) handlePredict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.predictions.Predict(c.Request.Context(), sessionRecord(c).UserID, entities.YieldInput{
		CropType:         req.CropType,
		AreaHectares:     req.AreaHectares,
		RainfallMM:       req.RainfallMM,
		TemperatureC:     req.TemperatureC,
		SoilPH:           req.SoilPH,
		FertilizerKgHa:   req.FertilizerKgHa,
		PestControl:      req.PestControl,
		SoilCondition:    req.SoilCondition,
		WeatherCondition: req.WeatherCondition,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	views := make([]recommendationView, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		views = append(views, recommendationView{
			Category: rec.Category,
			Priority: rec.Priority,
			Message:  translate(c, rec.MessageKey, rec.Params),
			Action:   translate(c, rec.ActionKey, rec.Params),
		})
	}

	respondOK(c, gin.H{
		"crop_type":  result.Prediction.CropType,
		"yield":      result.Estimate.Yield,
		"confidence": result.Estimate.Confidence,
		"factors":    result.Estimate.Factors,
		"summary": translate(c, "messages.predicted_yield",
			map[string]any{"yield": fmt.Sprintf("%.2f", result.Estimate.Yield)}),
		"recommendations": views,
		"market":          result.Market,
	})
}
