package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreaMultiplier_Tiers(t *testing.T) {
	assert.Equal(t, 1.0, AreaMultiplier(CarpetSize{Length: 5, Width: 10, Unit: "feet"}))   // area 50, boundary stays 1.0
	assert.Equal(t, 1.2, AreaMultiplier(CarpetSize{Length: 6, Width: 10, Unit: "feet"}))   // area 60
	assert.Equal(t, 1.5, AreaMultiplier(CarpetSize{Length: 12, Width: 10, Unit: "feet"}))  // area 120
	assert.Equal(t, 1.0, AreaMultiplier(CarpetSize{Length: 10, Width: 10, Unit: "feet"}))  // area 100, boundary stays 1.0
}

func TestAreaMultiplier_IgnoresUnit(t *testing.T) {
	feet := CarpetSize{Length: 10, Width: 10, Unit: "feet"}
	meters := CarpetSize{Length: 10, Width: 10, Unit: "meters"}

	// Same raw area, same tier, regardless of unit.
	assert.Equal(t, AreaMultiplier(feet), AreaMultiplier(meters))
}

func TestCalculatePricing_Example(t *testing.T) {
	size := CarpetSize{Length: 12, Width: 10, Unit: "feet"}
	services := CarpetServices{Cleaning: "deep", Drying: "dehumidifier", Protection: "stain-guard"}

	pricing := CalculatePricing(size, services, 20)

	assert.Equal(t, 45.0, pricing.BasePrice)
	assert.Equal(t, 40.0, pricing.AdditionalServices)
	assert.Equal(t, 127.5, pricing.TotalPrice) // (45+15+25) * 1.5
	assert.Equal(t, 20.0, pricing.Deposit)
	assert.Equal(t, 107.5, pricing.Balance)
}

func TestCalculatePricing_UnknownTierPricesAtZero(t *testing.T) {
	size := CarpetSize{Length: 2, Width: 3, Unit: "feet"}
	services := CarpetServices{Cleaning: "basic", Drying: "air-dry", Protection: "none"}

	pricing := CalculatePricing(size, services, 0)
	assert.Equal(t, 25.0, pricing.TotalPrice)

	services.Cleaning = "nonexistent"
	pricing = CalculatePricing(size, services, 0)
	assert.Equal(t, 0.0, pricing.TotalPrice)
}
