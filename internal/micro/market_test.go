package micro

import (
	"testing"

	"github.com/Dan9191/econosfera/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var textbook = models.MarketVariables{
	DemandIntercept: 100,
	DemandSlope:     1,
	SupplyIntercept: 20,
	SupplySlope:     1,
}

func TestEquilibrium(t *testing.T) {
	res, ok := Equilibrium(textbook)
	require.True(t, ok)

	assert.Equal(t, 40.0, res.Quantity)
	assert.Equal(t, 60.0, res.Price)
	assert.Equal(t, 800.0, res.ConsumerSurplus)
	assert.Equal(t, 800.0, res.ProducerSurplus)
	assert.Equal(t, 1600.0, res.TotalSurplus)
	assert.Equal(t, -1.5, res.DemandElasticity)
	assert.Equal(t, 1.5, res.SupplyElasticity)
}

func TestEquilibriumInfeasible(t *testing.T) {
	v := textbook
	v.SupplyIntercept = 100
	_, ok := Equilibrium(v)
	assert.False(t, ok, "equal intercepts")

	v.SupplyIntercept = 120
	_, ok = Equilibrium(v)
	assert.False(t, ok, "supply above demand")
}

func TestEquilibriumClampsSlopes(t *testing.T) {
	flat := textbook
	flat.DemandSlope = 0
	clamped := textbook
	clamped.DemandSlope = 0.01

	a, ok := Equilibrium(flat)
	require.True(t, ok)
	b, _ := Equilibrium(clamped)
	assert.Equal(t, b, a)
}

func TestApplyTax(t *testing.T) {
	res, ok := ApplyTax(textbook, 10)
	require.True(t, ok)

	assert.Equal(t, 35.0, res.Quantity)
	assert.Equal(t, 65.0, res.BuyerPrice)
	assert.Equal(t, 55.0, res.SellerPrice)
	assert.Equal(t, 350.0, res.TaxRevenue)
	assert.Equal(t, 25.0, res.DeadweightLoss)
	assert.Equal(t, 0.5, res.BuyerShare)

	_, ok = ApplyTax(textbook, 80)
	assert.False(t, ok, "tax closes the market")

	_, ok = ApplyTax(textbook, -1)
	assert.False(t, ok)
}

func TestControlPrice(t *testing.T) {
	ceiling, ok := ControlPrice(textbook, models.PriceCeiling, 50)
	require.True(t, ok)
	assert.True(t, ceiling.Binding)
	assert.Equal(t, 50.0, ceiling.QuantityDemanded)
	assert.Equal(t, 30.0, ceiling.QuantitySupplied)
	assert.Equal(t, 20.0, ceiling.Shortage)

	floor, ok := ControlPrice(textbook, models.PriceFloor, 70)
	require.True(t, ok)
	assert.True(t, floor.Binding)
	assert.Equal(t, 20.0, floor.Surplus)

	loose, ok := ControlPrice(textbook, models.PriceCeiling, 70)
	require.True(t, ok)
	assert.False(t, loose.Binding)
	assert.Equal(t, 40.0, loose.QuantityDemanded)
	assert.Zero(t, loose.Shortage)

	_, ok = ControlPrice(textbook, "quota", 50)
	assert.False(t, ok)
}

func TestCurves(t *testing.T) {
	demand := DemandCurve(textbook, 200, 5)
	assert.Equal(t, []models.Point{{X: 0, Y: 100}, {X: 50, Y: 50}, {X: 100, Y: 0}}, demand)

	supply := SupplyCurve(textbook, 100, 3)
	assert.Equal(t, []models.Point{{X: 0, Y: 20}, {X: 50, Y: 70}, {X: 100, Y: 120}}, supply)
}
