package pricing

import (
	"github.com/shopdarven/storefront/internal/config"
	"github.com/shopdarven/storefront/internal/models"
)

// Composer derives the monetary breakdown shown on the cart and checkout views.
// The cart view, the checkout view and the submitted order all go through Compose,
// so the three can never disagree.
type Composer struct {
	StitchingSurchargePerSuit models.Amount
	FlatDeliveryCharge        models.Amount
	FreeDeliveryThreshold     models.Amount
	// EnforceFreeDelivery waives the delivery charge at or above FreeDeliveryThreshold.
	// Off by default: the storefront advertises free delivery but has always charged it.
	EnforceFreeDelivery bool
}

func NewComposer(cfg config.Pricing) *Composer {
	return &Composer{
		StitchingSurchargePerSuit: models.Amount(cfg.StitchingSurchargePerSuit),
		FlatDeliveryCharge:        models.Amount(cfg.FlatDeliveryCharge),
		FreeDeliveryThreshold:     models.Amount(cfg.FreeDeliveryThreshold),
		EnforceFreeDelivery:       cfg.EnforceFreeDelivery,
	}
}

// Subtotal is Σ price × quantity. It never includes the stitching surcharge.
func Subtotal(items []models.LineItem) models.Amount {
	var subtotal models.Amount

	for _, item := range items {
		subtotal += item.LineTotal()
	}

	return subtotal
}

// StitchingCost charges the per-suit surcharge for every unit of every custom line.
func (c *Composer) StitchingCost(items []models.LineItem) models.Amount {
	var suits int

	for _, item := range items {
		if item.Type == models.LineTypeCustom {
			suits += item.Quantity
		}
	}

	return c.StitchingSurchargePerSuit * models.Amount(suits)
}

func (c *Composer) Compose(items []models.LineItem) models.PriceSummary {
	subtotal := Subtotal(items)
	stitching := c.StitchingCost(items)

	eligible := c.FreeDeliveryThreshold > 0 && subtotal >= c.FreeDeliveryThreshold

	delivery := c.FlatDeliveryCharge
	if eligible && c.EnforceFreeDelivery {
		delivery = 0
	}

	return models.PriceSummary{
		Subtotal:              subtotal,
		StitchingCost:         stitching,
		DeliveryCharges:       delivery,
		Total:                 subtotal + stitching + delivery,
		FreeDeliveryThreshold: c.FreeDeliveryThreshold,
		FreeDeliveryEligible:  eligible,
	}
}
