package agronomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropai/internal/domain/entities"
)

func categories(recs []entities.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Category
	}
	return out
}

func TestRecommendYieldBands(t *testing.T) {
	in := optimalRice()

	assert.Contains(t, categories(Recommend(in, 2.0)), "yield_improvement")
	assert.Contains(t, categories(Recommend(in, 4.0)), "yield_optimization")
	assert.Contains(t, categories(Recommend(in, 6.5)), "yield_maintenance")
}

func TestRecommendFactorTriggers(t *testing.T) {
	in := optimalRice()
	in.SoilPH = 5.2
	in.RainfallMM = 300
	in.FertilizerKgHa = 10
	in.PestControl = 3

	recs := Recommend(in, 2.0)
	got := categories(recs)
	assert.ElementsMatch(t, []string{
		"yield_improvement", "soil_acidic", "irrigation", "nutrition_low", "pest_management",
	}, got)

	var acidic entities.Recommendation
	for _, r := range recs {
		if r.Category == "soil_acidic" {
			acidic = r
		}
	}
	require.NotEmpty(t, acidic.MessageKey)
	assert.Equal(t, "advice.soil_acidic.message", acidic.MessageKey)
	assert.Equal(t, "advice.soil_acidic.action", acidic.ActionKey)
	assert.Equal(t, PriorityHigh, acidic.Priority)
	assert.Equal(t, 5.2, acidic.Params["ph"])
	assert.Equal(t, "rice", acidic.Params["crop"])
}

func TestRecommendConditionKeywords(t *testing.T) {
	in := optimalRice()
	in.WeatherCondition = "Hot and DRY spell"
	in.SoilCondition = "some pest damage visible"

	got := categories(Recommend(in, 6.0))
	assert.Contains(t, got, "water_management")
	assert.Contains(t, got, "pest_in_field")
}

func TestRecommendHighEndTriggers(t *testing.T) {
	in := optimalRice()
	in.SoilPH = 8.5
	in.RainfallMM = 2400
	in.FertilizerKgHa = 200

	got := categories(Recommend(in, 6.0))
	assert.Contains(t, got, "soil_alkaline")
	assert.Contains(t, got, "drainage")
	assert.Contains(t, got, "nutrition_high")
}
