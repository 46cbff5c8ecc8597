package agronomy

import "cropai/internal/domain/entities"

// Market reference data in ₹. Prices are per quintal, costs per hectare.
var (
	marketPrices = map[string]float64{
		"rice":      2500,
		"wheat":     2200,
		"sugarcane": 350,
		"cotton":    6800,
		"maize":     1800,
	}
	cultivationCosts = map[string]float64{
		"rice":      35000,
		"wheat":     25000,
		"sugarcane": 45000,
		"cotton":    40000,
		"maize":     30000,
	}
)

const (
	defaultPrice = 2000
	defaultCost  = 30000
	// Yields are in tons/hectare, prices per quintal.
	quintalsPerTon = 10
)

// MarketPrice returns the reference price per quintal for crop.
func MarketPrice(crop string) float64 {
	if price, ok := marketPrices[crop]; ok {
		return price
	}
	return defaultPrice
}

// MarketOutlook projects production, revenue, cost and profit for a
// predicted yield over the given area.
func MarketOutlook(crop string, predictedYield, areaHectares float64) entities.MarketInsight {
	price := MarketPrice(crop)
	cost, ok := cultivationCosts[crop]
	if !ok {
		cost = defaultCost
	}

	production := predictedYield * areaHectares * quintalsPerTon
	revenue := production * price
	totalCost := cost * areaHectares
	profit := revenue - totalCost

	insight := entities.MarketInsight{
		CropType:        crop,
		PredictedYield:  predictedYield,
		AreaHectares:    areaHectares,
		TotalProduction: production,
		MarketPrice:     price,
		GrossRevenue:    revenue,
		TotalCost:       totalCost,
		NetProfit:       profit,
	}
	if revenue > 0 {
		insight.ProfitMargin = profit / revenue * 100
	}
	if areaHectares > 0 {
		insight.RevenuePerHectare = revenue / areaHectares
		insight.CostPerHectare = totalCost / areaHectares
	}
	return insight
}
