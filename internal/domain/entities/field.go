package entities

import "time"

type Field struct {
	ID               uint
	UserID           uint
	Name             string
	SoilCondition    string
	WeatherCondition string
	LastYearProfit   float64
	FieldType        string
	AreaHectares     float64
	CropType         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
