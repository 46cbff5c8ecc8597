// Package agronomy holds the pure crop rules: yield estimation from the
// six numeric features, advisory generation and market projections. It
// has no I/O; services persist and localize its output.
package agronomy

import (
	"cropai/internal/domain"
	"cropai/internal/domain/entities"
)

// span is an inclusive numeric range.
type span struct {
	lo, hi float64
}

func (s span) contains(v float64) bool {
	return s.lo <= v && v <= s.hi
}

// profile captures the growing conditions a crop responds to.
type profile struct {
	optimalRainfall span // mm per season
	optimalTemp     span // °C
	optimalPH       span
	baseYield       float64 // tons/hectare under neutral conditions
}

var cropProfiles = map[string]profile{
	"rice":      {span{1200, 1800}, span{25, 30}, span{6.0, 7.0}, 5.0},
	"wheat":     {span{400, 600}, span{18, 22}, span{6.5, 7.5}, 3.5},
	"sugarcane": {span{1200, 1600}, span{26, 32}, span{6.5, 7.5}, 60.0},
	"cotton":    {span{600, 1000}, span{25, 30}, span{6.0, 7.5}, 2.5},
	"maize":     {span{700, 1000}, span{24, 28}, span{6.0, 7.0}, 6.0},
}

// Crops lists the supported crop types.
func Crops() []string {
	return []string{"rice", "wheat", "sugarcane", "cotton", "maize"}
}

// IsKnownCrop reports whether crop has a profile.
func IsKnownCrop(crop string) bool {
	_, ok := cropProfiles[crop]
	return ok
}

const minYield = 0.1

// Estimate is the outcome of the rule-based yield model.
type Estimate struct {
	// Yield in tons per hectare.
	Yield float64
	// Confidence in [0.60, 0.98], derived from how many inputs sit in
	// their optimal band for the crop.
	Confidence float64
	// Factors breaks the multiplier down per input, for display.
	Factors map[string]float64
}

// EstimateYield runs the factor model: a per-crop base yield scaled by
// rainfall, temperature, soil pH, fertilizer and pest-control factors,
// clamped to a positive minimum.
func EstimateYield(in entities.YieldInput) (Estimate, error) {
	p, ok := cropProfiles[in.CropType]
	if !ok {
		return Estimate{}, domain.ErrUnknownCrop
	}

	factors := map[string]float64{
		"rainfall":    rainfallFactor(in.RainfallMM, p),
		"temperature": temperatureFactor(in.TemperatureC, p),
		"soil_ph":     phFactor(in.SoilPH, p),
		"fertilizer":  fertilizerFactor(in.FertilizerKgHa),
		"pest":        pestFactor(in.PestControl),
	}

	yield := p.baseYield
	for _, f := range factors {
		yield *= f
	}
	if yield < minYield {
		yield = minYield
	}

	return Estimate{
		Yield:      yield,
		Confidence: confidence(in, p),
		Factors:    factors,
	}, nil
}

func rainfallFactor(rainfall float64, p profile) float64 {
	switch {
	case p.optimalRainfall.contains(rainfall):
		return 1.0
	case rainfall < p.optimalRainfall.lo:
		return 0.3 + 0.7*(rainfall/p.optimalRainfall.lo)
	default:
		return clamp(1.0-0.5*((rainfall-p.optimalRainfall.hi)/p.optimalRainfall.hi), 0.1, 1.0)
	}
}

func temperatureFactor(temp float64, p profile) float64 {
	switch {
	case p.optimalTemp.contains(temp):
		return 1.0
	case temp < p.optimalTemp.lo:
		return 0.4 + 0.6*(temp/p.optimalTemp.lo)
	default:
		return clamp(1.0-0.4*((temp-p.optimalTemp.hi)/30), 0.1, 1.0)
	}
}

func phFactor(ph float64, p profile) float64 {
	if p.optimalPH.contains(ph) {
		return 1.0
	}
	distance := ph - p.optimalPH.hi
	if ph < p.optimalPH.lo {
		distance = p.optimalPH.lo - ph
	}
	return clamp(1.0-0.2*distance, 0.3, 1.0)
}

func fertilizerFactor(kgHa float64) float64 {
	switch {
	case kgHa < 20:
		return 0.4 + 0.6*(kgHa/20)
	case kgHa <= 100:
		return 1.0
	default:
		return clamp(1.0-0.3*((kgHa-100)/100), 0.1, 1.0)
	}
}

// pestFactor maps the 1-10 pest-control score to (0, 1].
func pestFactor(score float64) float64 {
	return clamp(score/10, 0.1, 1.0)
}

// confidence starts high and drops for every input outside its optimal
// band for the crop.
func confidence(in entities.YieldInput, p profile) float64 {
	c := 0.95
	if !p.optimalRainfall.contains(in.RainfallMM) {
		c -= 0.07
	}
	if !p.optimalTemp.contains(in.TemperatureC) {
		c -= 0.07
	}
	if !p.optimalPH.contains(in.SoilPH) {
		c -= 0.07
	}
	if in.FertilizerKgHa < 20 || in.FertilizerKgHa > 100 {
		c -= 0.05
	}
	if in.PestControl < 5 {
		c -= 0.05
	}
	return clamp(c, 0.60, 0.98)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
