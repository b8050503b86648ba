package models

// Service price tables in dollars. Keys are the tier values stored on the
// carpet record; an unknown tier prices at 0.
var (
	CleaningPrices = map[string]float64{
		"basic":         25,
		"deep":          45,
		"stain-removal": 35,
		"sanitization":  30,
	}

	DryingPrices = map[string]float64{
		"air-dry":      0,
		"dehumidifier": 15,
		"fan-assisted": 10,
	}

	ProtectionPrices = map[string]float64{
		"none":           0,
		"stain-guard":    25,
		"anti-microbial": 20,
	}
)

// AreaMultiplier returns the size surcharge tier for a raw length*width
// area. The unit is deliberately ignored: feet and meters feed the same
// thresholds, matching the established pricing behavior.
func AreaMultiplier(size CarpetSize) float64 {
	area := size.Length * size.Width
	switch {
	case area > 100:
		return 1.5
	case area > 50:
		return 1.2
	default:
		return 1
	}
}

// CalculatePricing prices a job from its selected service tiers and size.
// Pricing happens once at creation; later edits never recompute it.
func CalculatePricing(size CarpetSize, services CarpetServices, deposit float64) CarpetPricing {
	base := CleaningPrices[services.Cleaning]
	additional := DryingPrices[services.Drying] + ProtectionPrices[services.Protection]
	total := (base + additional) * AreaMultiplier(size)

	return CarpetPricing{
		BasePrice:          base,
		AdditionalServices: additional,
		TotalPrice:         total,
		Deposit:            deposit,
		Balance:            total - deposit,
	}
}
