package httpapi

import (
	"github.com/gin-gonic/gin"

	"cropai/internal/domain/agronomy"
)

type marketPriceView struct {
	Crop          string  `json:"crop"`
	CropLabel     string  `json:"crop_label"`
	PricePerQuint float64 `json:"price_per_quintal"`
	Trend         string  `json:"trend"`
}

// Reference trends for the price board. Real feeds would replace this.
var marketTrends = map[string]string{
	"rice":      "up",
	"wheat":     "stable",
	"sugarcane": "stable",
	"cotton":    "up",
	"maize":     "down",
}

func (s *Server) handleMarketPrices(c *gin.Context) {
	crops := agronomy.Crops()
	views := make([]marketPriceView, 0, len(crops))
	for _, crop := range crops {
		trend := marketTrends[crop]
		if trend == "" {
			trend = "stable"
		}
		views = append(views, marketPriceView{
			Crop:          crop,
			CropLabel:     translate(c, "crops."+crop, nil),
			PricePerQuint: agronomy.MarketPrice(crop),
			Trend:         translate(c, "market.trend_"+trend, nil),
		})
	}
	respondOK(c, gin.H{
		"title":  translate(c, "market.title", nil),
		"prices": views,
	})
}
