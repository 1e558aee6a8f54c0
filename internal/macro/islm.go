package macro

import (
	"github.com/Dan9191/econosfera/internal/models"
	"github.com/Dan9191/econosfera/internal/utils"
)

// SolveISLM finds the income and interest rate that clear both the goods
// market (IS: Y = mult*(A - b*r)) and the money market (LM: M/P = k*Y - h*r).
// It returns false when the system has no economically meaningful solution.
func SolveISLM(v models.ISLMVariables) (models.ISLMResults, bool) {
	mpc := ClampMPC(v.MPC)
	a := AutonomousSpending(v.MacroVariables)
	b := v.InvestmentSensitivity
	k := v.MoneyIncomeSensitivity
	h := v.MoneyRateSensitivity
	m := v.RealMoneySupply

	denominator := h*(1-mpc) + b*k
	if denominator <= 0 {
		return models.ISLMResults{}, false
	}

	income := (h*a + b*m) / denominator

	var rate float64
	switch {
	case h > 0:
		rate = (k*income - m) / h
	case b > 0:
		rate = (a - (1-mpc)*income) / b
	default:
		return models.ISLMResults{}, false
	}

	if income < 0 || rate < 0 {
		return models.ISLMResults{}, false
	}

	consumption := v.AutonomousConsumption + mpc*(income-v.Taxes)
	investment := v.Investment - b*rate

	return models.ISLMResults{
		Income:       utils.Round2(income),
		InterestRate: utils.Round2(rate),
		Consumption:  utils.Round2(consumption),
		Investment:   utils.Round2(investment),
		MoneyDemand:  utils.Round2(k*income - h*rate),
		Multiplier:   utils.Round2(SpendingMultiplier(mpc)),
	}, true
}

// ISCurve returns goods-market equilibrium points (X = income, Y = rate)
// for steps rates spread over [minRate, maxRate]. Rates that would imply
// negative income are skipped.
func ISCurve(v models.ISLMVariables, minRate, maxRate float64, steps int) []models.Point {
	a := AutonomousSpending(v.MacroVariables)
	mult := SpendingMultiplier(v.MPC)

	points := make([]models.Point, 0, steps)
	for _, r := range utils.Linspace(minRate, maxRate, steps) {
		y := mult * (a - v.InvestmentSensitivity*r)
		if y < 0 {
			continue
		}
		points = append(points, models.Point{X: utils.Round2(y), Y: utils.Round2(r)})
	}
	return points
}

// LMCurve returns money-market equilibrium points (X = income, Y = rate)
// for steps rates spread over [minRate, maxRate]. It is empty when k <= 0.
func LMCurve(v models.ISLMVariables, minRate, maxRate float64, steps int) []models.Point {
	k := v.MoneyIncomeSensitivity
	if k <= 0 {
		return nil
	}

	points := make([]models.Point, 0, steps)
	for _, r := range utils.Linspace(minRate, maxRate, steps) {
		y := (v.RealMoneySupply + v.MoneyRateSensitivity*r) / k
		if y < 0 {
			continue
		}
		points = append(points, models.Point{X: utils.Round2(y), Y: utils.Round2(r)})
	}
	return points
}
