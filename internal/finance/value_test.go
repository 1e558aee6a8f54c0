package finance

import (
	"math"
	"testing"

	"github.com/Dan9191/econosfera/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureAndPresentValue(t *testing.T) {
	fv := FutureValue(1000, 0.05, 10)
	assert.InDelta(t, 1628.89, fv, 0.01)
	assert.InDelta(t, 1000, PresentValue(fv, 0.05, 10), 1e-9)

	for _, rate := range []float64{0, 0.01, 0.07, 0.25} {
		for _, n := range []float64{1, 5, 30} {
			pv := PresentValue(FutureValue(250, rate, n), rate, n)
			assert.InDelta(t, 250, pv, 1e-9, "rate=%v n=%v", rate, n)
		}
	}
}

func TestAnnuityFutureValue(t *testing.T) {
	assert.Equal(t, 1200.0, AnnuityFutureValue(100, 0, 12))
	assert.Equal(t, 1200.0, AnnuityFutureValue(100, 1e-12, 12))
	assert.InDelta(t, 1268.25, AnnuityFutureValue(100, 0.01, 12), 0.01)
}

func TestGrowthSeries(t *testing.T) {
	series := GrowthSeries(1000, 0, 0.1, 2)
	require.Len(t, series, 3)
	assert.InDelta(t, 1000, series[0], 1e-9)
	assert.InDelta(t, 1100, series[1], 1e-9)
	assert.InDelta(t, 1210, series[2], 1e-9)

	assert.Nil(t, GrowthSeries(1000, 0, 0.1, -1))
}

func TestNPV(t *testing.T) {
	assert.InDelta(t, 0, NPV(0.1, []float64{-1000, 1100}), 1e-9)
	assert.InDelta(t, 100, NPV(0, []float64{-1000, 500, 600}), 1e-9)
	assert.Zero(t, NPV(0.1, nil))
}

func TestIRR(t *testing.T) {
	rate, ok := IRR([]float64{-1000, 1100})
	require.True(t, ok)
	assert.InDelta(t, 0.1, rate, 1e-6)

	flows := []float64{-100, 60, 60}
	rate, ok = IRR(flows)
	require.True(t, ok)
	assert.InDelta(t, 0.130662, rate, 1e-5)
	assert.InDelta(t, 0, NPV(rate, flows), 1e-6)
}

func TestIRRGivesUp(t *testing.T) {
	_, ok := IRR([]float64{100, 100})
	assert.False(t, ok, "no sign change")

	_, ok = IRR([]float64{-100})
	assert.False(t, ok, "single flow")

	_, ok = IRR([]float64{0, 0, 0})
	assert.False(t, ok, "flat flows")
}

func TestWACC(t *testing.T) {
	wacc, ok := WACC(models.WACCVariables{Equity: 600, Debt: 400, CostOfEquity: 0.12, CostOfDebt: 0.08, TaxRate: 0.3})
	require.True(t, ok)
	assert.InDelta(t, 0.0944, wacc, 1e-12)

	_, ok = WACC(models.WACCVariables{})
	assert.False(t, ok)
}

func TestForwardPrice(t *testing.T) {
	assert.InDelta(t, 105, ForwardPrice(models.ForwardVariables{Spot: 100, Rate: 0.05, Years: 1, Compounding: models.Discrete}), 1e-9)
	assert.InDelta(t, 100*math.Exp(0.05), ForwardPrice(models.ForwardVariables{Spot: 100, Rate: 0.05, Years: 1, Compounding: models.Continuous}), 1e-9)
	assert.InDelta(t, 100*math.Exp(0.03), ForwardPrice(models.ForwardVariables{Spot: 100, Rate: 0.05, Years: 1, IncomeYield: 0.02, Compounding: models.Continuous}), 1e-9)
}

func TestBreakEven(t *testing.T) {
	res, ok := BreakEven(10000, 50, 30)
	require.True(t, ok)
	assert.Equal(t, 500.0, res.Quantity)
	assert.Equal(t, 25000.0, res.Revenue)
	assert.Equal(t, 20.0, res.ContributionMargin)

	_, ok = BreakEven(10000, 30, 30)
	assert.False(t, ok)
}
