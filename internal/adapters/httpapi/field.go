package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cropai/internal/domain/entities"
)

type addFieldRequest struct {
	Name             string  `json:"name" binding:"required,max=120"`
	CropType         string  `json:"crop_type" binding:"required,crop"`
	AreaHectares     float64 `json:"area" binding:"required,gt=0"`
	SoilCondition    string  `json:"soil_condition"`
	WeatherCondition string  `json:"weather_condition"`
	LastYearProfit   float64 `json:"last_year_profit"`
	FieldType        string  `json:"field_type"`
}

type fieldView struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	CropType         string    `json:"crop_type"`
	AreaHectares     float64   `json:"area"`
	SoilCondition    string    `json:"soil_condition"`
	WeatherCondition string    `json:"weather_condition"`
	LastYearProfit   float64   `json:"last_year_profit"`
	FieldType        string    `json:"field_type"`
	CreatedAt        time.Time `json:"created_at"`
}

func viewField(f entities.Field) fieldView {
	return fieldView{
		ID:               f.ID,
		Name:             f.Name,
		CropType:         f.CropType,
		AreaHectares:     f.AreaHectares,
		SoilCondition:    f.SoilCondition,
		WeatherCondition: f.WeatherCondition,
		LastYearProfit:   f.LastYearProfit,
		FieldType:        f.FieldType,
		CreatedAt:        f.CreatedAt,
	}
}

func (s *Server) handleAddField(c *gin.Context) {
	var req addFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	field := &entities.Field{
		UserID:           sessionRecord(c).UserID,
		Name:             req.Name,
		CropType:         req.CropType,
		AreaHectares:     req.AreaHectares,
		SoilCondition:    req.SoilCondition,
		WeatherCondition: req.WeatherCondition,
		LastYearProfit:   req.LastYearProfit,
		FieldType:        req.FieldType,
	}
	if err := s.fields.AddField(c.Request.Context(), field); err != nil {
		respondDomainError(c, err)
		return
	}
	respondCreated(c, viewField(*field))
}

func (s *Server) handleListFields(c *gin.Context) {
	fields, err := s.fields.GetFieldsByUserID(c.Request.Context(), sessionRecord(c).UserID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	views := make([]fieldView, 0, len(fields))
	for _, f := range fields {
		views = append(views, viewField(f))
	}
	respondOK(c, gin.H{"fields": views})
}
