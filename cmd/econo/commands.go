package main

import (
	"fmt"

	"github.com/Dan9191/econosfera/internal/finance"
	"github.com/Dan9191/econosfera/internal/macro"
	"github.com/Dan9191/econosfera/internal/micro"
	"github.com/Dan9191/econosfera/internal/models"
	"github.com/Dan9191/econosfera/internal/report"
	"github.com/spf13/cobra"
)

var (
	macroVars      models.MacroVariables
	islmVars       models.ISLMVariables
	marketVars     models.MarketVariables
	elasticityVars models.ElasticityVariables
	loanVars       models.LoanVariables
	irrRate        float64
	irrFlows       []float64
)

func printReport(cmd *cobra.Command, r report.Report) error {
	return r.WriteText(cmd.OutOrStdout())
}

func macroFlags(cmd *cobra.Command, v *models.MacroVariables) {
	f := cmd.Flags()
	f.Float64Var(&v.AutonomousConsumption, "c0", 200, "autonomous consumption")
	f.Float64Var(&v.MPC, "mpc", 0.75, "marginal propensity to consume")
	f.Float64Var(&v.Investment, "investment", 300, "investment")
	f.Float64Var(&v.GovernmentSpending, "government", 175, "government spending")
	f.Float64Var(&v.Taxes, "taxes", 100, "lump-sum taxes")
}

var macroCmd = &cobra.Command{
	Use:   "macro",
	Short: "Keynesian equilibrium income and multipliers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printReport(cmd, report.Macro(macroVars, macro.Equilibrium(macroVars)))
	},
}

var islmCmd = &cobra.Command{
	Use:   "islm",
	Short: "Joint goods and money market equilibrium",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, ok := macro.SolveISLM(islmVars)
		return printReport(cmd, report.ISLM(islmVars, res, ok))
	},
}

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Linear supply and demand equilibrium",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, ok := micro.Equilibrium(marketVars)
		return printReport(cmd, report.Market(marketVars, res, ok))
	},
}

var elasticityCmd = &cobra.Command{
	Use:   "elasticity",
	Short: "Arc price elasticity of demand",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, ok := micro.ArcElasticity(elasticityVars)
		return printReport(cmd, report.Elasticity(elasticityVars, res, ok))
	},
}

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Fixed payment amortization table",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, ok := finance.Amortize(loanVars)
		if !ok {
			return fmt.Errorf("loan needs a positive principal and a term of 1 to %d months", finance.MaxLoanMonths)
		}
		return printReport(cmd, report.Amortization(loanVars, res))
	},
}

var irrCmd = &cobra.Command{
	Use:   "irr",
	Short: "Net present value and internal rate of return of cash flows",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(irrFlows) == 0 {
			return fmt.Errorf("at least one cash flow is required")
		}
		irr, ok := finance.IRR(irrFlows)
		return printReport(cmd, report.Cashflows(irrRate, irrFlows, finance.NPV(irrRate, irrFlows), irr, ok))
	},
}

func init() {
	macroFlags(macroCmd, &macroVars)

	macroFlags(islmCmd, &islmVars.MacroVariables)
	f := islmCmd.Flags()
	f.Float64Var(&islmVars.InvestmentSensitivity, "b", 20, "investment sensitivity to the interest rate")
	f.Float64Var(&islmVars.MoneyIncomeSensitivity, "k", 0.5, "money demand sensitivity to income")
	f.Float64Var(&islmVars.MoneyRateSensitivity, "h", 40, "money demand sensitivity to the interest rate")
	f.Float64Var(&islmVars.RealMoneySupply, "money", 500, "real money supply M/P")

	f = marketCmd.Flags()
	f.Float64Var(&marketVars.DemandIntercept, "a", 100, "demand intercept")
	f.Float64Var(&marketVars.DemandSlope, "b", 1, "demand slope")
	f.Float64Var(&marketVars.SupplyIntercept, "c", 20, "supply intercept")
	f.Float64Var(&marketVars.SupplySlope, "d", 1, "supply slope")

	f = elasticityCmd.Flags()
	f.Float64Var(&elasticityVars.Price1, "p1", 10, "initial price")
	f.Float64Var(&elasticityVars.Quantity1, "q1", 100, "initial quantity")
	f.Float64Var(&elasticityVars.Price2, "p2", 12, "new price")
	f.Float64Var(&elasticityVars.Quantity2, "q2", 80, "new quantity")

	f = loanCmd.Flags()
	f.Float64Var(&loanVars.Principal, "principal", 100000, "amount borrowed")
	f.Float64Var(&loanVars.AnnualRate, "rate", 0.12, "annual interest rate")
	f.IntVar(&loanVars.Months, "months", 12, "term in months")

	f = irrCmd.Flags()
	f.Float64Var(&irrRate, "rate", 0.1, "discount rate for the NPV")
	f.Float64SliceVar(&irrFlows, "flows", nil, "cash flows, the first at t=0")

	rootCmd.AddCommand(macroCmd, islmCmd, marketCmd, elasticityCmd, loanCmd, irrCmd)
}
