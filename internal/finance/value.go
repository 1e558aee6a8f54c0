// Package finance implements time-value-of-money, fixed income and corporate
// finance formulas. Unlike the market models, values are returned unrounded;
// callers format them for display.
package finance

import (
	"math"

	"github.com/Dan9191/econosfera/internal/models"
)

// nearZeroRate is the threshold below which a periodic rate is treated as zero
const nearZeroRate = 1e-9

// FutureValue compounds pv at rate per period over n periods
func FutureValue(pv, rate float64, n float64) float64 {
	return pv * math.Pow(1+rate, n)
}

// PresentValue discounts fv at rate per period over n periods
func PresentValue(fv, rate float64, n float64) float64 {
	return fv / math.Pow(1+rate, n)
}

// AnnuityFutureValue accumulates n end-of-period contributions at rate.
// Near-zero rates fall back to contribution*n.
func AnnuityFutureValue(contribution, rate float64, n int) float64 {
	if math.Abs(rate) < nearZeroRate {
		return contribution * float64(n)
	}
	return contribution * (math.Pow(1+rate, float64(n)) - 1) / rate
}

// GrowthSeries returns the balance after each of n periods for an initial
// deposit plus periodic contributions. Index 0 is the opening balance.
func GrowthSeries(initial, contribution, rate float64, n int) []float64 {
	if n < 0 {
		return nil
	}
	out := make([]float64, n+1)
	out[0] = initial
	for t := 1; t <= n; t++ {
		out[t] = FutureValue(initial, rate, float64(t)) + AnnuityFutureValue(contribution, rate, t)
	}
	return out
}

// NPV discounts flows at rate, with flows[0] occurring today
func NPV(rate float64, flows []float64) float64 {
	var total float64
	for t, cf := range flows {
		total += cf / math.Pow(1+rate, float64(t))
	}
	return total
}

const (
	irrGuess         = 0.1
	irrMaxIterations = 100
	irrTolerance     = 1e-7
	irrMaxRate       = 10.0
)

// IRR finds the rate that sets NPV to zero with Newton-Raphson. It gives up
// and returns false when the derivative vanishes, the rate leaves (-1, 10],
// or convergence is not reached within a bounded number of iterations.
func IRR(flows []float64) (float64, bool) {
	if len(flows) < 2 {
		return 0, false
	}

	rate := irrGuess
	for i := 0; i < irrMaxIterations; i++ {
		var npv, derivative float64
		for t, cf := range flows {
			discount := math.Pow(1+rate, float64(t))
			npv += cf / discount
			derivative -= float64(t) * cf / (discount * (1 + rate))
		}
		if derivative == 0 || math.IsNaN(derivative) {
			return 0, false
		}

		next := rate - npv/derivative
		if next <= -1 || next > irrMaxRate || math.IsNaN(next) {
			return 0, false
		}
		if math.Abs(next-rate) < irrTolerance {
			return next, true
		}
		rate = next
	}
	return 0, false
}

// WACC weights the after-tax cost of debt and the cost of equity by their
// share of firm value. It returns false when the firm has no capital.
func WACC(v models.WACCVariables) (float64, bool) {
	total := v.Equity + v.Debt
	if total <= 0 || v.Equity < 0 || v.Debt < 0 {
		return 0, false
	}
	we := v.Equity / total
	wd := v.Debt / total
	return we*v.CostOfEquity + wd*v.CostOfDebt*(1-v.TaxRate), true
}

// ForwardPrice carries the spot price forward net of any income yield.
// Unknown compounding modes are treated as discrete.
func ForwardPrice(v models.ForwardVariables) float64 {
	if v.Compounding == models.Continuous {
		return v.Spot * math.Exp((v.Rate-v.IncomeYield)*v.Years)
	}
	return v.Spot * math.Pow(1+v.Rate, v.Years) / math.Pow(1+v.IncomeYield, v.Years)
}

// BreakEven returns the units needed to cover fixed costs. It returns false
// when each unit sold does not contribute to fixed costs.
func BreakEven(fixedCosts, price, variableCost float64) (models.BreakEvenResults, bool) {
	margin := price - variableCost
	if margin <= 0 || fixedCosts < 0 {
		return models.BreakEvenResults{}, false
	}
	q := fixedCosts / margin
	return models.BreakEvenResults{
		Quantity:           q,
		Revenue:            q * price,
		ContributionMargin: margin,
	}, true
}
