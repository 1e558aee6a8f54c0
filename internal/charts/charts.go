// Package charts turns formula outputs into plot-ready point series.
package charts

import (
	"github.com/Dan9191/econosfera/internal/finance"
	"github.com/Dan9191/econosfera/internal/macro"
	"github.com/Dan9191/econosfera/internal/micro"
	"github.com/Dan9191/econosfera/internal/models"
	"github.com/Dan9191/econosfera/internal/utils"
)

// IncomeByMPC plots equilibrium income as the propensity to consume varies
func IncomeByMPC(v models.MacroVariables, minMPC, maxMPC float64, steps int) models.Series {
	s := models.Series{Name: "income_by_mpc", XLabel: "mpc", YLabel: "income"}
	for _, mpc := range utils.Linspace(minMPC, maxMPC, steps) {
		v.MPC = mpc
		res := macro.Equilibrium(v)
		s.Points = append(s.Points, models.Point{X: macro.ClampMPC(mpc), Y: res.EquilibriumIncome})
	}
	return s
}

// KeynesianCross plots aggregate expenditure against the 45-degree line
func KeynesianCross(v models.MacroVariables, maxIncome float64, steps int) []models.Series {
	ae := models.Series{Name: "aggregate_expenditure", XLabel: "income", YLabel: "expenditure"}
	diagonal := models.Series{Name: "income_equals_expenditure", XLabel: "income", YLabel: "expenditure"}
	for _, y := range utils.Linspace(0, maxIncome, steps) {
		ae.Points = append(ae.Points, models.Point{X: utils.Round2(y), Y: utils.Round2(macro.AggregateExpenditure(v, y))})
		diagonal.Points = append(diagonal.Points, models.Point{X: utils.Round2(y), Y: utils.Round2(y)})
	}
	return []models.Series{ae, diagonal}
}

// ISLM plots both curves over the same rate domain
func ISLM(v models.ISLMVariables, minRate, maxRate float64, steps int) []models.Series {
	return []models.Series{
		{Name: "is", XLabel: "income", YLabel: "rate", Points: macro.ISCurve(v, minRate, maxRate, steps)},
		{Name: "lm", XLabel: "income", YLabel: "rate", Points: macro.LMCurve(v, minRate, maxRate, steps)},
	}
}

// Market plots demand and supply up to maxQuantity
func Market(v models.MarketVariables, maxQuantity float64, steps int) []models.Series {
	return []models.Series{
		{Name: "demand", XLabel: "quantity", YLabel: "price", Points: micro.DemandCurve(v, maxQuantity, steps)},
		{Name: "supply", XLabel: "quantity", YLabel: "price", Points: micro.SupplyCurve(v, maxQuantity, steps)},
	}
}

// Growth plots a savings balance period by period
func Growth(initial, contribution, rate float64, periods int) models.Series {
	s := models.Series{Name: "growth", XLabel: "period", YLabel: "balance"}
	for t, balance := range finance.GrowthSeries(initial, contribution, rate, periods) {
		s.Points = append(s.Points, models.Point{X: float64(t), Y: utils.Round2(balance)})
	}
	return s
}

// AmortizationBalance plots the outstanding loan balance; it is empty for invalid loans
func AmortizationBalance(v models.LoanVariables) models.Series {
	s := models.Series{Name: "amortization_balance", XLabel: "month", YLabel: "balance"}
	schedule, ok := finance.Amortize(v)
	if !ok {
		return s
	}
	s.Points = append(s.Points, models.Point{X: 0, Y: utils.Round2(v.Principal)})
	for _, row := range schedule.Rows {
		s.Points = append(s.Points, models.Point{X: float64(row.Period), Y: utils.Round2(row.Balance)})
	}
	return s
}

// NPVProfile plots net present value against the discount rate
func NPVProfile(flows []float64, minRate, maxRate float64, steps int) models.Series {
	s := models.Series{Name: "npv_profile", XLabel: "rate", YLabel: "npv"}
	for _, r := range utils.Linspace(minRate, maxRate, steps) {
		if r <= -1 {
			continue
		}
		s.Points = append(s.Points, models.Point{X: r, Y: utils.Round2(finance.NPV(r, flows))})
	}
	return s
}

// PortfolioFrontier plots expected return against volatility for every mix of two assets
func PortfolioFrontier(v models.PortfolioVariables, steps int) models.Series {
	s := models.Series{Name: "portfolio_frontier", XLabel: "volatility", YLabel: "return"}
	for _, p := range finance.Frontier(v, steps) {
		s.Points = append(s.Points, models.Point{X: p.Volatility, Y: p.ExpectedReturn})
	}
	return s
}
