package httpapi

import (
	"github.com/gin-gonic/gin"
)

// Static forecast data until a provider integration lands. Mirrors the
// shape the dashboard widgets consume.
type forecastDay struct {
	Day        string  `json:"day"`
	TempC      float64 `json:"temp_c"`
	RainfallMM float64 `json:"rainfall_mm"`
	Humidity   int     `json:"humidity"`
}

func (s *Server) handleWeather(c *gin.Context) {
	forecast := []forecastDay{
		{Day: "today", TempC: 28, RainfallMM: 2, Humidity: 65},
		{Day: "tomorrow", TempC: 27, RainfallMM: 12, Humidity: 72},
		{Day: "day_after", TempC: 26, RainfallMM: 45, Humidity: 85},
	}

	payload := gin.H{
		"title":    translate(c, "weather.title", nil),
		"forecast": forecast,
	}
	// Heavy rain alert when any forecast day crosses 40mm.
	for _, day := range forecast {
		if day.RainfallMM > 40 {
			payload["alert"] = translate(c, "weather.alert_heavy_rain", nil)
			break
		}
	}
	respondOK(c, payload)
}
