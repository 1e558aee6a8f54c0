package service

import (
	"encoding/json"
	"fmt"

	"github.com/Dan9191/econosfera/internal/charts"
	"github.com/Dan9191/econosfera/internal/finance"
	"github.com/Dan9191/econosfera/internal/models"
)

const (
	defaultSteps = 50
	maxSteps     = 500
)

// ChartRequest carries simulator parameters and the plotted domain
type ChartRequest struct {
	Params json.RawMessage `json:"params"`
	Min    float64         `json:"min"`
	Max    float64         `json:"max"`
	Steps  int             `json:"steps"`
}

func (r ChartRequest) steps() int {
	switch {
	case r.Steps <= 0:
		return defaultSteps
	case r.Steps > maxSteps:
		return maxSteps
	}
	return r.Steps
}

func (r ChartRequest) cacheKey() string {
	return fmt.Sprintf("%s|%g|%g|%d", r.Params, r.Min, r.Max, r.steps())
}

// GrowthParams describes a savings plan
type GrowthParams struct {
	Initial      float64 `json:"initial"`
	Contribution float64 `json:"contribution"`
	Rate         float64 `json:"rate"`
	Periods      int     `json:"periods"`
}

// CashflowParams describes an investment project
type CashflowParams struct {
	Rate  float64   `json:"rate"`
	Flows []float64 `json:"flows"`
}

// ChartNames lists the charts Chart can build
var ChartNames = []string{
	"income-by-mpc", "keynesian-cross", "islm", "market",
	"growth", "amortization", "npv-profile", "portfolio-frontier",
}

// chartBuilder decodes the request eagerly so bad input fails before caching
func chartBuilder(name string, req ChartRequest) (func() []models.Series, error) {
	steps := req.steps()
	if req.Max < req.Min {
		return nil, fmt.Errorf("%w: max must not be below min", ErrInvalidInput)
	}

	switch name {
	case "income-by-mpc":
		var v models.MacroVariables
		if err := Decode(req.Params, &v); err != nil {
			return nil, err
		}
		lo, hi := req.Min, req.Max
		if lo == 0 && hi == 0 {
			lo, hi = 0.01, 0.99
		}
		return func() []models.Series { return []models.Series{charts.IncomeByMPC(v, lo, hi, steps)} }, nil

	case "keynesian-cross":
		var v models.MacroVariables
		if err := Decode(req.Params, &v); err != nil {
			return nil, err
		}
		if req.Max <= 0 {
			return nil, fmt.Errorf("%w: max income must be positive", ErrInvalidInput)
		}
		return func() []models.Series { return charts.KeynesianCross(v, req.Max, steps) }, nil

	case "islm":
		var v models.ISLMVariables
		if err := Decode(req.Params, &v); err != nil {
			return nil, err
		}
		return func() []models.Series { return charts.ISLM(v, req.Min, req.Max, steps) }, nil

	case "market":
		var v models.MarketVariables
		if err := Decode(req.Params, &v); err != nil {
			return nil, err
		}
		if req.Max <= 0 {
			return nil, fmt.Errorf("%w: max quantity must be positive", ErrInvalidInput)
		}
		return func() []models.Series { return charts.Market(v, req.Max, steps) }, nil

	case "growth":
		var p GrowthParams
		if err := Decode(req.Params, &p); err != nil {
			return nil, err
		}
		if p.Periods <= 0 || p.Periods > maxSteps {
			return nil, fmt.Errorf("%w: periods must be between 1 and %d", ErrInvalidInput, maxSteps)
		}
		return func() []models.Series {
			return []models.Series{charts.Growth(p.Initial, p.Contribution, p.Rate, p.Periods)}
		}, nil

	case "amortization":
		var v models.LoanVariables
		if err := Decode(req.Params, &v); err != nil {
			return nil, err
		}
		if v.Months > finance.MaxLoanMonths {
			return nil, fmt.Errorf("%w: term too long", ErrInvalidInput)
		}
		return func() []models.Series { return []models.Series{charts.AmortizationBalance(v)} }, nil

	case "npv-profile":
		var p CashflowParams
		if err := Decode(req.Params, &p); err != nil {
			return nil, err
		}
		if len(p.Flows) == 0 {
			return nil, fmt.Errorf("%w: flows are required", ErrInvalidInput)
		}
		return func() []models.Series {
			return []models.Series{charts.NPVProfile(p.Flows, req.Min, req.Max, steps)}
		}, nil

	case "portfolio-frontier":
		var v models.PortfolioVariables
		if err := Decode(req.Params, &v); err != nil {
			return nil, err
		}
		return func() []models.Series { return []models.Series{charts.PortfolioFrontier(v, steps)} }, nil
	}

	return nil, fmt.Errorf("%w: unknown chart %q", ErrInvalidInput, name)
}
