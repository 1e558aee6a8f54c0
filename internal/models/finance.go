package models

// BondVariables describes a fixed-coupon bond
type BondVariables struct {
	FaceValue  float64 `json:"face_value"`
	CouponRate float64 `json:"coupon_rate"` // annual
	MarketRate float64 `json:"market_rate"` // annual yield to maturity
	Years      int     `json:"years"`
	Frequency  int     `json:"frequency"` // coupons per year
}

// BondCashFlow is a single discounted bond payment
type BondCashFlow struct {
	Period       int     `json:"period"`
	Flow         float64 `json:"flow"`
	PresentValue float64 `json:"present_value"`
}

// BondResults represents a bond valuation
type BondResults struct {
	Price            float64        `json:"price"`
	CouponPayment    float64        `json:"coupon_payment"`
	Periods          int            `json:"periods"`
	MacaulayDuration float64        `json:"macaulay_duration"` // years
	CashFlows        []BondCashFlow `json:"cash_flows"`
}

// CetesResults represents a discount treasury certificate valuation
type CetesResults struct {
	FaceValue    float64 `json:"face_value"`
	Days         int     `json:"days"`
	Price        float64 `json:"price"`
	Yield        float64 `json:"yield"`
	DiscountRate float64 `json:"discount_rate"`
	Gain         float64 `json:"gain"`
}

// AmortizationRow is one period of a fixed-payment loan schedule
type AmortizationRow struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// AmortizationResults represents a French method loan schedule
type AmortizationResults struct {
	Payment       float64           `json:"payment"`
	TotalPaid     float64           `json:"total_paid"`
	TotalInterest float64           `json:"total_interest"`
	Rows          []AmortizationRow `json:"rows"`
}

// WACCVariables holds the capital structure of a firm
type WACCVariables struct {
	Equity       float64 `json:"equity"`
	Debt         float64 `json:"debt"`
	CostOfEquity float64 `json:"cost_of_equity"`
	CostOfDebt   float64 `json:"cost_of_debt"`
	TaxRate      float64 `json:"tax_rate"`
}

// Compounding selects how forward prices accrue
type Compounding string

const (
	Discrete   Compounding = "discrete"
	Continuous Compounding = "continuous"
)

// ForwardVariables describes a forward contract on an asset
type ForwardVariables struct {
	Spot        float64     `json:"spot"`
	Rate        float64     `json:"rate"`
	Years       float64     `json:"years"`
	IncomeYield float64     `json:"income_yield"`
	Compounding Compounding `json:"compounding"`
}

// BreakEvenResults represents the break-even point of a product
type BreakEvenResults struct {
	Quantity           float64 `json:"quantity"`
	Revenue            float64 `json:"revenue"`
	ContributionMargin float64 `json:"contribution_margin"`
}

// PortfolioVariables describes a two-asset portfolio
type PortfolioVariables struct {
	WeightA     float64 `json:"weight_a"`
	ReturnA     float64 `json:"return_a"`
	ReturnB     float64 `json:"return_b"`
	VolatilityA float64 `json:"volatility_a"`
	VolatilityB float64 `json:"volatility_b"`
	Correlation float64 `json:"correlation"`
}

// PortfolioResults represents the expected return and risk of a portfolio
type PortfolioResults struct {
	WeightA        float64 `json:"weight_a"`
	WeightB        float64 `json:"weight_b"`
	ExpectedReturn float64 `json:"expected_return"`
	Volatility     float64 `json:"volatility"`
}

// LoanVariables describes a fixed-payment loan
type LoanVariables struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	Months     int     `json:"months"`
}
