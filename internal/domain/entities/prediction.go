package entities

import "time"

// YieldInput carries the six numeric features plus crop type used by the
// yield estimator.
type YieldInput struct {
	CropType         string
	AreaHectares     float64
	RainfallMM       float64
	TemperatureC     float64
	SoilPH           float64
	FertilizerKgHa   float64
	PestControl      float64
	SoilCondition    string
	WeatherCondition string
}

// Recommendation is one advisory item. MessageKey and ActionKey are
// translation keys resolved in the caller's language; Params feed the
// placeholder interpolation.
type Recommendation struct {
	Category   string         `json:"category"`
	Priority   string         `json:"priority"`
	MessageKey string         `json:"message_key"`
	ActionKey  string         `json:"action_key"`
	Params     map[string]any `json:"params,omitempty"`
}

// MarketInsight is the profit projection for one prediction.
type MarketInsight struct {
	CropType          string  `json:"crop_type"`
	PredictedYield    float64 `json:"predicted_yield"`
	AreaHectares      float64 `json:"area"`
	TotalProduction   float64 `json:"total_production"`
	MarketPrice       float64 `json:"market_price"`
	GrossRevenue      float64 `json:"gross_revenue"`
	TotalCost         float64 `json:"total_cost"`
	NetProfit         float64 `json:"net_profit"`
	ProfitMargin      float64 `json:"profit_margin"`
	RevenuePerHectare float64 `json:"revenue_per_hectare"`
	CostPerHectare    float64 `json:"cost_per_hectare"`
}

type Prediction struct {
	ID              uint
	UserID          uint // 0 for anonymous predictions
	FieldID         uint // 0 when not tied to a stored field
	CropType        string
	PredictedYield  float64
	Confidence      float64
	Recommendations []Recommendation
	CreatedAt       time.Time
}
