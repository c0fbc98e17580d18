// Package pricing computes shipment costs from rate cards. It is pure:
// no I/O, no clock, no randomness. Callers look up the rate card and
// decide when to persist or recompute the result.
package pricing

import "github.com/shopspring/decimal"

var (
	// internationalMultiplier scales the base cost of any
	// international shipment.
	internationalMultiplier = decimal.NewFromFloat(2.5)
	// customsClearanceFee is the flat fee added when an international
	// shipment requires customs processing.
	customsClearanceFee = decimal.NewFromInt(5000)
	// customsValueThreshold is the declared value above which the
	// surcharge applies.
	customsValueThreshold = decimal.NewFromInt(100000)
	// customsValueRate is the surcharge rate on the declared value
	// exceeding the threshold.
	customsValueRate = decimal.NewFromFloat(0.05)
)

// RateCard holds the pricing coefficients for one
// (destination, service type) pair.
type RateCard struct {
	BaseTariff decimal.Decimal
	WeightRate decimal.Decimal
	VolumeRate decimal.Decimal
}

// ShipmentInput carries the cost-affecting fields of a shipment.
// Weight, Volume and CustomsValue must already be validated
// non-negative by the caller.
type ShipmentInput struct {
	Weight                   decimal.Decimal
	Volume                   decimal.Decimal
	IsInternational          bool
	RequiresCustomsClearance bool
	CustomsValue             decimal.Decimal
}

// ComputeShipmentCost returns the cost of a shipment under the given
// rate card, rounded to 2 decimal places. A nil rate card resolves to
// zero cost rather than an error: missing rate cards are a degraded
// mode, not a failure, and callers surface the warning.
func ComputeShipmentCost(in ShipmentInput, rate *RateCard) decimal.Decimal {
	if rate == nil {
		return decimal.Zero
	}

	cost := rate.BaseTariff.
		Add(in.Weight.Mul(rate.WeightRate)).
		Add(in.Volume.Mul(rate.VolumeRate))

	if in.IsInternational {
		cost = cost.Mul(internationalMultiplier)
		if in.RequiresCustomsClearance {
			cost = cost.Add(customsClearanceFee)
		}
		if in.CustomsValue.GreaterThan(customsValueThreshold) {
			surcharge := in.CustomsValue.Sub(customsValueThreshold).Mul(customsValueRate)
			cost = cost.Add(surcharge)
		}
	}

	return cost.Round(2)
}
