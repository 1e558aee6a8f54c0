package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dan9191/econosfera/internal/models"
	"github.com/Dan9191/econosfera/internal/service"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type createScenarioRequest struct {
	Kind   models.ScenarioKind `json:"kind"`
	Name   string              `json:"name"`
	Params json.RawMessage     `json:"params"`
}

// CreateScenario saves simulator parameters under a name
func (h *Handler) CreateScenario(w http.ResponseWriter, r *http.Request) {
	var req createScenarioRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	scenario, err := h.svc.SaveScenario(r.Context(), req.Kind, req.Name, req.Params)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, scenario)
}

// ListScenarios returns recent scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, fmt.Errorf("%w: limit must be a number", service.ErrInvalidInput))
			return
		}
		limit = n
	}

	scenarios, err := h.svc.ListScenarios(r.Context(), models.ScenarioKind(q.Get("kind")), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if scenarios == nil {
		scenarios = []models.Scenario{}
	}
	writeJSON(w, http.StatusOK, scenarios)
}

func scenarioID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad scenario id", service.ErrInvalidInput)
	}
	return id, nil
}

// GetScenario returns a scenario with its recomputed results
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	id, err := scenarioID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	eval, err := h.svc.GetScenario(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eval)
}

// ShareScenario issues a share token
func (h *Handler) ShareScenario(w http.ResponseWriter, r *http.Request) {
	id, err := scenarioID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	link, err := h.svc.ShareScenario(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

// OpenShared resolves a share token
func (h *Handler) OpenShared(w http.ResponseWriter, r *http.Request) {
	eval, err := h.svc.OpenShared(r.Context(), mux.Vars(r)["token"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eval)
}
