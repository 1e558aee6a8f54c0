package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Dan9191/econosfera/internal/finance"
	"github.com/Dan9191/econosfera/internal/macro"
	"github.com/Dan9191/econosfera/internal/micro"
	"github.com/Dan9191/econosfera/internal/models"
	"github.com/Dan9191/econosfera/internal/report"
)

// Evaluation is the recomputed outcome of a simulator run. Feasible is false
// when the parameters describe an economy without a meaningful solution;
// Result is then omitted.
type Evaluation struct {
	Kind     models.ScenarioKind `json:"kind"`
	Feasible bool                `json:"feasible"`
	Result   any                 `json:"result,omitempty"`
	Report   report.Report       `json:"-"`
}

// Decode strictly unmarshals simulator parameters
func Decode(params []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(params))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// Evaluate runs the simulator named by kind on JSON params
func Evaluate(kind models.ScenarioKind, params []byte) (*Evaluation, error) {
	eval := &Evaluation{Kind: kind}

	switch kind {
	case models.KindMacro:
		var v models.MacroVariables
		if err := Decode(params, &v); err != nil {
			return nil, err
		}
		res := macro.Equilibrium(v)
		eval.Feasible, eval.Result, eval.Report = true, res, report.Macro(v, res)

	case models.KindISLM:
		var v models.ISLMVariables
		if err := Decode(params, &v); err != nil {
			return nil, err
		}
		res, ok := macro.SolveISLM(v)
		eval.Feasible, eval.Report = ok, report.ISLM(v, res, ok)
		if ok {
			eval.Result = res
		}

	case models.KindMarket:
		var v models.MarketVariables
		if err := Decode(params, &v); err != nil {
			return nil, err
		}
		res, ok := micro.Equilibrium(v)
		eval.Feasible, eval.Report = ok, report.Market(v, res, ok)
		if ok {
			eval.Result = res
		}

	case models.KindElasticity:
		var v models.ElasticityVariables
		if err := Decode(params, &v); err != nil {
			return nil, err
		}
		res, ok := micro.ArcElasticity(v)
		eval.Feasible, eval.Report = ok, report.Elasticity(v, res, ok)
		if ok {
			eval.Result = res
		}

	case models.KindBond:
		var v models.BondVariables
		if err := Decode(params, &v); err != nil {
			return nil, err
		}
		res, ok := finance.BondPrice(v)
		if !ok {
			return nil, fmt.Errorf("%w: bond needs a positive face value and 1 to %d coupon periods", ErrInvalidInput, finance.MaxBondPeriods)
		}
		eval.Feasible, eval.Result, eval.Report = true, res, report.Bond(v, res)

	case models.KindLoan:
		var v models.LoanVariables
		if err := Decode(params, &v); err != nil {
			return nil, err
		}
		res, ok := finance.Amortize(v)
		if !ok {
			return nil, fmt.Errorf("%w: loan needs a positive principal and a term of 1 to %d months", ErrInvalidInput, finance.MaxLoanMonths)
		}
		eval.Feasible, eval.Result, eval.Report = true, res, report.Amortization(v, res)

	case models.KindPortfolio:
		var v models.PortfolioVariables
		if err := Decode(params, &v); err != nil {
			return nil, err
		}
		res := finance.Portfolio(v)
		eval.Feasible, eval.Result, eval.Report = true, res, report.Portfolio(v, res)

	default:
		return nil, fmt.Errorf("%w: unknown scenario kind %q", ErrInvalidInput, kind)
	}

	if eval.Result != nil && !Finite(eval.Result) {
		eval.Feasible, eval.Result = false, nil
	}
	return eval, nil
}

// Finite reports whether v encodes to JSON, which fails for any infinite or
// NaN number reachable from it
func Finite(v any) bool {
	_, err := json.Marshal(v)
	var unsupported *json.UnsupportedValueError
	return !errors.As(err, &unsupported)
}
