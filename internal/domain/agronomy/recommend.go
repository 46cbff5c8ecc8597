package agronomy

import (
	"strings"

	"cropai/internal/domain/entities"
)

// Priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommend derives advisory items from the inputs and the predicted
// yield. Messages are emitted as translation keys under "advice." so the
// HTTP layer can render them in the client's language.
func Recommend(in entities.YieldInput, predictedYield float64) []entities.Recommendation {
	recs := make([]entities.Recommendation, 0, 4)

	switch {
	case predictedYield < 3:
		recs = append(recs, advice("yield_improvement", PriorityHigh, nil))
	case predictedYield < 5:
		recs = append(recs, advice("yield_optimization", PriorityMedium, nil))
	default:
		recs = append(recs, advice("yield_maintenance", PriorityLow, nil))
	}

	if in.SoilPH < 6.0 {
		recs = append(recs, advice("soil_acidic", PriorityHigh, map[string]any{
			"ph": in.SoilPH, "crop": in.CropType,
		}))
	} else if in.SoilPH > 8.0 {
		recs = append(recs, advice("soil_alkaline", PriorityHigh, map[string]any{
			"ph": in.SoilPH, "crop": in.CropType,
		}))
	}

	if in.RainfallMM < 500 {
		recs = append(recs, advice("irrigation", PriorityHigh, map[string]any{
			"rainfall": in.RainfallMM,
		}))
	} else if in.RainfallMM > 2000 {
		recs = append(recs, advice("drainage", PriorityMedium, map[string]any{
			"rainfall": in.RainfallMM,
		}))
	}

	if in.FertilizerKgHa < 30 {
		recs = append(recs, advice("nutrition_low", PriorityMedium, map[string]any{
			"crop": in.CropType,
		}))
	} else if in.FertilizerKgHa > 150 {
		recs = append(recs, advice("nutrition_high", PriorityMedium, nil))
	}

	if in.PestControl < 5 {
		recs = append(recs, advice("pest_management", PriorityHigh, nil))
	}

	if strings.Contains(strings.ToLower(in.WeatherCondition), "dry") {
		recs = append(recs, advice("water_management", PriorityHigh, nil))
	}
	if strings.Contains(strings.ToLower(in.SoilCondition), "pest") {
		recs = append(recs, advice("pest_in_field", PriorityHigh, nil))
	}

	return recs
}

func advice(name, priority string, params map[string]any) entities.Recommendation {
	return entities.Recommendation{
		Category:   name,
		Priority:   priority,
		MessageKey: "advice." + name + ".message",
		ActionKey:  "advice." + name + ".action",
		Params:     params,
	}
}
