package models

// MacroVariables holds the inputs of the Keynesian multiplier model
type MacroVariables struct {
	AutonomousConsumption float64 `json:"autonomous_consumption"`
	MPC                   float64 `json:"mpc"` // marginal propensity to consume
	Investment            float64 `json:"investment"`
	GovernmentSpending    float64 `json:"government_spending"`
	Taxes                 float64 `json:"taxes"`
}

// MacroResults represents the goods-market equilibrium derived from MacroVariables
type MacroResults struct {
	AutonomousSpending       float64 `json:"autonomous_spending"`
	SpendingMultiplier       float64 `json:"spending_multiplier"`
	TaxMultiplier            float64 `json:"tax_multiplier"`
	BalancedBudgetMultiplier float64 `json:"balanced_budget_multiplier"`
	EquilibriumIncome        float64 `json:"equilibrium_income"`
	Consumption              float64 `json:"consumption"`
	PrivateSaving            float64 `json:"private_saving"`
	PublicSaving             float64 `json:"public_saving"`
	NationalSaving           float64 `json:"national_saving"`
}

// ISLMVariables extends MacroVariables with the money-market parameters
type ISLMVariables struct {
	MacroVariables
	InvestmentSensitivity  float64 `json:"investment_sensitivity"`   // b
	MoneyIncomeSensitivity float64 `json:"money_income_sensitivity"` // k
	MoneyRateSensitivity   float64 `json:"money_rate_sensitivity"`   // h
	RealMoneySupply        float64 `json:"real_money_supply"`        // M/P
}

// ISLMResults represents the joint goods and money market equilibrium
type ISLMResults struct {
	Income       float64 `json:"income"`
	InterestRate float64 `json:"interest_rate"`
	Consumption  float64 `json:"consumption"`
	Investment   float64 `json:"investment"`
	MoneyDemand  float64 `json:"money_demand"`
	Multiplier   float64 `json:"multiplier"`
}
