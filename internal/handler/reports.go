package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Dan9191/econosfera/internal/models"
	"github.com/Dan9191/econosfera/internal/report"
	"github.com/Dan9191/econosfera/internal/service"
	"github.com/gorilla/mux"
)

// Report renders a simulator run as text, CSV or JSON tables
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
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

	h.writeReport(w, eval.Report, string(kind), r.URL.Query().Get("format"))
}

// writeReport renders rep as text (the default), CSV or JSON
func (h *Handler) writeReport(w http.ResponseWriter, rep report.Report, name, format string) {
	switch format {
	case "", "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := rep.WriteText(w); err != nil {
			h.log.WithError(err).Error("Failed to write text report")
		}
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".csv"))
		if err := rep.WriteCSV(w); err != nil {
			h.log.WithError(err).Error("Failed to write CSV report")
		}
	case "json":
		writeJSON(w, http.StatusOK, rep)
	default:
		h.writeError(w, fmt.Errorf("%w: unknown report format %q", service.ErrInvalidInput, format))
	}
}

type emailReportRequest struct {
	To     string          `json:"to"`
	Params json.RawMessage `json:"params"`
}

// EmailReport mails a rendered report
func (h *Handler) EmailReport(w http.ResponseWriter, r *http.Request) {
	var req emailReportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	kind := models.ScenarioKind(mux.Vars(r)["kind"])
	if err := h.svc.EmailReport(kind, req.Params, req.To); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}
