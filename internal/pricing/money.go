package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/shopdarven/storefront/internal/models"
)

// CustomReferenceMeters is the suit length a custom fabric's catalog price is quoted for.
const CustomReferenceMeters = 4

// ToAmount rounds a catalog price to whole currency units, half away from zero.
func ToAmount(value float64) models.Amount {
	return models.Amount(decimal.NewFromFloat(value).Round(0).IntPart())
}

// FabricLinePrice is the price of one cut of fabric: pricePerMeter × meters, rounded once.
func FabricLinePrice(pricePerMeter, meters float64) models.Amount {
	total := decimal.NewFromFloat(pricePerMeter).Mul(decimal.NewFromFloat(meters))

	return models.Amount(total.Round(0).IntPart())
}

// CustomPricePerMeter derives the per-meter price of a custom fabric from its reference suit price.
func CustomPricePerMeter(basePrice float64) decimal.Decimal {
	return decimal.NewFromFloat(basePrice).Div(decimal.NewFromInt(CustomReferenceMeters))
}

// CustomFabricPrice is round(basePrice / 4 × meters).
func CustomFabricPrice(basePrice, meters float64) models.Amount {
	total := CustomPricePerMeter(basePrice).Mul(decimal.NewFromFloat(meters))

	return models.Amount(total.Round(0).IntPart())
}

// ValidMeters reports whether meters is positive and a whole multiple of step.
func ValidMeters(meters, step float64) bool {
	if meters <= 0 || step <= 0 {
		return false
	}

	return decimal.NewFromFloat(meters).Mod(decimal.NewFromFloat(step)).IsZero()
}
