package handler

import (
	"fmt"
	"net/http"

	"github.com/Dan9191/econosfera/internal/finance"
	"github.com/Dan9191/econosfera/internal/micro"
	"github.com/Dan9191/econosfera/internal/models"
	"github.com/Dan9191/econosfera/internal/report"
	"github.com/Dan9191/econosfera/internal/service"
	"github.com/gorilla/mux"
)

const infeasibleMessage = "No feasible solution for these parameters; adjust them and try again"

type calcResponse struct {
	Feasible bool   `json:"feasible"`
	Result   any    `json:"result,omitempty"`
	Message  string `json:"message,omitempty"`
}

func result(v any, ok bool) calcResponse {
	if !ok || !service.Finite(v) {
		return calcResponse{Message: infeasibleMessage}
	}
	return calcResponse{Feasible: true, Result: v}
}

// Calculate runs a simulator on the posted parameters
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	kind := models.ScenarioKind(mux.Vars(r)["kind"])
	body, err := readBody(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	eval, err := service.Evaluate(kind, body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result(eval.Result, eval.Feasible))
}

type taxRequest struct {
	Market models.MarketVariables `json:"market"`
	Tax    float64                `json:"tax"`
}

// Tax computes the incidence of a per-unit tax
func (h *Handler) Tax(w http.ResponseWriter, r *http.Request) {
	var req taxRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result(micro.ApplyTax(req.Market, req.Tax)))
}

type priceControlRequest struct {
	Market models.MarketVariables  `json:"market"`
	Kind   models.PriceControlKind `json:"kind"`
	Price  float64                 `json:"price"`
}

// PriceControl evaluates a price ceiling or floor
func (h *Handler) PriceControl(w http.ResponseWriter, r *http.Request) {
	var req priceControlRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if req.Kind != models.PriceCeiling && req.Kind != models.PriceFloor {
		h.writeError(w, fmt.Errorf("%w: kind must be ceiling or floor", service.ErrInvalidInput))
		return
	}
	writeJSON(w, http.StatusOK, result(micro.ControlPrice(req.Market, req.Kind, req.Price)))
}

type valueRequest struct {
	PresentValue float64 `json:"present_value"`
	FutureValue  float64 `json:"future_value"`
	Rate         float64 `json:"rate"`
	Periods      float64 `json:"periods"`
}

type annuityRequest struct {
	Contribution float64 `json:"contribution"`
	Rate         float64 `json:"rate"`
	Periods      int     `json:"periods"`
}

type cetesRequest struct {
	FaceValue float64  `json:"face_value"`
	Days      int      `json:"days"`
	Yield     *float64 `json:"yield,omitempty"`
	Price     float64  `json:"price,omitempty"`
}

type breakEvenRequest struct {
	FixedCosts   float64 `json:"fixed_costs"`
	Price        float64 `json:"price"`
	VariableCost float64 `json:"variable_cost"`
}

type amountResponse struct {
	Value float64 `json:"value"`
}

// Finance dispatches the stateless finance calculators
func (h *Handler) Finance(w http.ResponseWriter, r *http.Request) {
	op := mux.Vars(r)["op"]
	var (
		resp calcResponse
		err  error
	)

	switch op {
	case "fv":
		var req valueRequest
		if err = decodeJSON(w, r, &req); err == nil {
			resp = result(amountResponse{finance.FutureValue(req.PresentValue, req.Rate, req.Periods)}, req.Rate > -1)
		}
	case "pv":
		var req valueRequest
		if err = decodeJSON(w, r, &req); err == nil {
			resp = result(amountResponse{finance.PresentValue(req.FutureValue, req.Rate, req.Periods)}, req.Rate > -1)
		}
	case "annuity":
		var req annuityRequest
		if err = decodeJSON(w, r, &req); err == nil {
			resp = result(amountResponse{finance.AnnuityFutureValue(req.Contribution, req.Rate, req.Periods)}, req.Periods >= 0)
		}
	case "cetes":
		var (
			res models.CetesResults
			ok  bool
		)
		res, ok, err = h.cetes(w, r)
		if err == nil && ok {
			if format := r.URL.Query().Get("format"); format != "" && format != "json" {
				h.writeReport(w, report.Cetes(res), "cetes", format)
				return
			}
		}
		resp = result(res, ok)
	case "npv":
		var req service.CashflowParams
		if err = decodeJSON(w, r, &req); err == nil {
			resp = result(amountResponse{finance.NPV(req.Rate, req.Flows)}, req.Rate > -1)
		}
	case "irr":
		var req service.CashflowParams
		if err = decodeJSON(w, r, &req); err == nil {
			irr, ok := finance.IRR(req.Flows)
			resp = result(amountResponse{irr}, ok)
		}
	case "wacc":
		var req models.WACCVariables
		if err = decodeJSON(w, r, &req); err == nil {
			wacc, ok := finance.WACC(req)
			resp = result(amountResponse{wacc}, ok)
		}
	case "forward":
		var req models.ForwardVariables
		if err = decodeJSON(w, r, &req); err == nil {
			resp = result(amountResponse{finance.ForwardPrice(req)}, true)
		}
	case "breakeven":
		var req breakEvenRequest
		if err = decodeJSON(w, r, &req); err == nil {
			resp = result(finance.BreakEven(req.FixedCosts, req.Price, req.VariableCost))
		}
	default:
		err = fmt.Errorf("%w: unknown finance operation %q", service.ErrInvalidInput, op)
	}

	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// cetes prices from a yield, recovers a yield from a price, or falls back to
// the latest published yield when neither is given
func (h *Handler) cetes(w http.ResponseWriter, r *http.Request) (models.CetesResults, bool, error) {
	var req cetesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return models.CetesResults{}, false, err
	}
	if req.FaceValue == 0 {
		req.FaceValue = 10
	}

	if req.Price > 0 {
		res, ok := finance.CetesYield(req.FaceValue, req.Price, req.Days)
		return res, ok, nil
	}

	var yield float64
	if req.Yield != nil {
		yield = *req.Yield
	} else {
		snap, err := h.svc.CetesRate(r.Context())
		if err != nil {
			return models.CetesResults{}, false, err
		}
		yield = snap.Value / 100
	}
	res, ok := finance.CetesPrice(req.FaceValue, yield, req.Days)
	return res, ok, nil
}
