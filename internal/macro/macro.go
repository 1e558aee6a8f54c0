// Package macro implements the Keynesian goods-market and IS-LM models.
package macro

import (
	"github.com/Dan9191/econosfera/internal/models"
	"github.com/Dan9191/econosfera/internal/utils"
)

const (
	minMPC = 0.01
	maxMPC = 0.99
)

// ClampMPC bounds the marginal propensity to consume so the multiplier stays finite and positive
func ClampMPC(mpc float64) float64 {
	return utils.Clamp(mpc, minMPC, maxMPC)
}

// AutonomousSpending returns A = C0 - MPC*T + I + G
func AutonomousSpending(v models.MacroVariables) float64 {
	mpc := ClampMPC(v.MPC)
	return v.AutonomousConsumption - mpc*v.Taxes + v.Investment + v.GovernmentSpending
}

// SpendingMultiplier returns 1/(1-MPC)
func SpendingMultiplier(mpc float64) float64 {
	return 1 / (1 - ClampMPC(mpc))
}

// TaxMultiplier returns -MPC/(1-MPC)
func TaxMultiplier(mpc float64) float64 {
	mpc = ClampMPC(mpc)
	return -mpc / (1 - mpc)
}

// Equilibrium solves the Keynesian cross for v. Results are rounded to cents.
func Equilibrium(v models.MacroVariables) models.MacroResults {
	mpc := ClampMPC(v.MPC)
	a := AutonomousSpending(v)
	mult := SpendingMultiplier(mpc)

	income := a * mult
	consumption := v.AutonomousConsumption + mpc*(income-v.Taxes)
	private := income - v.Taxes - consumption
	public := v.Taxes - v.GovernmentSpending

	return models.MacroResults{
		AutonomousSpending:       utils.Round2(a),
		SpendingMultiplier:       utils.Round2(mult),
		TaxMultiplier:            utils.Round2(TaxMultiplier(mpc)),
		BalancedBudgetMultiplier: 1,
		EquilibriumIncome:        utils.Round2(income),
		Consumption:              utils.Round2(consumption),
		PrivateSaving:            utils.Round2(private),
		PublicSaving:             utils.Round2(public),
		NationalSaving:           utils.Round2(private + public),
	}
}

// AggregateExpenditure returns planned spending C0 + MPC*(Y-T) + I + G at income y
func AggregateExpenditure(v models.MacroVariables, y float64) float64 {
	mpc := ClampMPC(v.MPC)
	return v.AutonomousConsumption + mpc*(y-v.Taxes) + v.Investment + v.GovernmentSpending
}
