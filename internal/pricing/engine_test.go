package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func standardRate() *RateCard {
	return &RateCard{
		BaseTariff: decimal.NewFromInt(500),
		WeightRate: decimal.NewFromInt(25),
		VolumeRate: decimal.NewFromInt(50),
	}
}

func TestComputeShipmentCost_Domestic(t *testing.T) {
	in := ShipmentInput{
		Weight: decimal.NewFromInt(10),
		Volume: decimal.NewFromInt(2),
	}

	cost := ComputeShipmentCost(in, standardRate())

	// 500 + 10*25 + 2*50
	assert.True(t, cost.Equal(decimal.NewFromInt(850)), "got %s", cost)
}

func TestComputeShipmentCost_InternationalWithCustoms(t *testing.T) {
	in := ShipmentInput{
		Weight:                   decimal.NewFromInt(10),
		Volume:                   decimal.NewFromInt(2),
		IsInternational:          true,
		RequiresCustomsClearance: true,
		CustomsValue:             decimal.NewFromInt(150000),
	}

	cost := ComputeShipmentCost(in, standardRate())

	// 850*2.5 = 2125; +5000 = 7125; +(150000-100000)*0.05 = 9625
	assert.True(t, cost.Equal(decimal.NewFromInt(9625)), "got %s", cost)
}

func TestComputeShipmentCost_InternationalNoClearance(t *testing.T) {
	in := ShipmentInput{
		Weight:          decimal.NewFromInt(10),
		Volume:          decimal.NewFromInt(2),
		IsInternational: true,
		CustomsValue:    decimal.NewFromInt(100000),
	}

	cost := ComputeShipmentCost(in, standardRate())

	// Multiplier only: value at the threshold does not trigger the surcharge.
	assert.True(t, cost.Equal(decimal.NewFromInt(2125)), "got %s", cost)
}

func TestComputeShipmentCost_MissingRateCard(t *testing.T) {
	in := ShipmentInput{
		Weight:          decimal.NewFromInt(10),
		Volume:          decimal.NewFromInt(2),
		IsInternational: true,
	}

	cost := ComputeShipmentCost(in, nil)

	assert.True(t, cost.IsZero(), "got %s", cost)
}

func TestComputeShipmentCost_Deterministic(t *testing.T) {
	in := ShipmentInput{
		Weight:                   decimal.RequireFromString("12.34"),
		Volume:                   decimal.RequireFromString("5.67"),
		IsInternational:          true,
		RequiresCustomsClearance: true,
		CustomsValue:             decimal.RequireFromString("123456.78"),
	}
	rate := &RateCard{
		BaseTariff: decimal.RequireFromString("499.99"),
		WeightRate: decimal.RequireFromString("24.75"),
		VolumeRate: decimal.RequireFromString("49.50"),
	}

	first := ComputeShipmentCost(in, rate)
	second := ComputeShipmentCost(in, rate)

	assert.True(t, first.Equal(second))
	assert.Equal(t, int32(-2), first.Exponent(), "result must carry 2 decimal places")
}

func TestComputeShipmentCost_Rounding(t *testing.T) {
	in := ShipmentInput{
		Weight: decimal.RequireFromString("1.333"),
		Volume: decimal.Zero,
	}
	rate := &RateCard{
		BaseTariff: decimal.Zero,
		WeightRate: decimal.NewFromInt(1),
		VolumeRate: decimal.Zero,
	}

	cost := ComputeShipmentCost(in, rate)

	assert.Equal(t, "1.33", cost.StringFixed(2))
}

func TestComputeShipmentCost_ZeroInputs(t *testing.T) {
	cost := ComputeShipmentCost(ShipmentInput{}, standardRate())

	// Base tariff alone.
	assert.True(t, cost.Equal(decimal.NewFromInt(500)), "got %s", cost)
	assert.False(t, cost.IsNegative())
}
