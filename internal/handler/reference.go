package handler

import (
	"fmt"
	"net/http"

	"github.com/Dan9191/econosfera/internal/blockchain"
	"github.com/Dan9191/econosfera/internal/catalog"
	"github.com/Dan9191/econosfera/internal/repository"
	"github.com/Dan9191/econosfera/internal/service"
	"github.com/gorilla/mux"
)

const maxMiningAttempts = 5_000_000

// ListCharts returns the chart names
func (h *Handler) ListCharts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, service.ChartNames)
}

// Chart returns plot-ready series
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	var req service.ChartRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	series, err := h.svc.Chart(mux.Vars(r)["name"], req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}

// CetesRate returns the latest CETES yield
func (h *Handler) CetesRate(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.CetesRate(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// Formulas lists reference formulas
func (h *Handler) Formulas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Formulas(catalog.Category(r.URL.Query().Get("category"))))
}

// Formula returns one reference formula
func (h *Handler) Formula(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	f, ok := catalog.FormulaByID(id)
	if !ok {
		h.writeError(w, fmt.Errorf("formula %s: %w", id, repository.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// Theories lists the schools of economic thought
func (h *Handler) Theories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Theories())
}

type merkleRequest struct {
	Leaves []string `json:"leaves"`
}

type merkleResponse struct {
	Root   string     `json:"root"`
	Levels [][]string `json:"levels"`
}

// Merkle builds a Merkle tree over the posted leaves
func (h *Handler) Merkle(w http.ResponseWriter, r *http.Request) {
	var req merkleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	tree, ok := blockchain.BuildMerkleTree(req.Leaves)
	if !ok {
		h.writeError(w, fmt.Errorf("%w: at least one leaf is required", service.ErrInvalidInput))
		return
	}
	writeJSON(w, http.StatusOK, merkleResponse{Root: tree.Root(), Levels: tree.Levels})
}

type mineRequest struct {
	Data        string `json:"data"`
	PrevHash    string `json:"prev_hash"`
	Difficulty  int    `json:"difficulty"`
	MaxAttempts int    `json:"max_attempts"`
}

// Mine runs a bounded proof-of-work search
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	var req mineRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if req.Difficulty < 0 || req.Difficulty > blockchain.MaxDifficulty {
		h.writeError(w, fmt.Errorf("%w: difficulty must be between 0 and %d", service.ErrInvalidInput, blockchain.MaxDifficulty))
		return
	}
	if req.MaxAttempts <= 0 || req.MaxAttempts > maxMiningAttempts {
		req.MaxAttempts = maxMiningAttempts
	}

	block, ok := blockchain.Mine(req.Data, req.PrevHash, req.Difficulty, req.MaxAttempts)
	resp := calcResponse{Feasible: ok, Result: block}
	if !ok {
		resp.Message = "Attempt limit reached before finding a valid nonce"
	}
	writeJSON(w, http.StatusOK, resp)
}

type verifyRequest struct {
	Block      blockchain.Block `json:"block"`
	Difficulty int              `json:"difficulty"`
}

// Verify checks a mined block against its data and difficulty
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if req.Difficulty < 0 || req.Difficulty > blockchain.MaxDifficulty {
		h.writeError(w, fmt.Errorf("%w: difficulty must be between 0 and %d", service.ErrInvalidInput, blockchain.MaxDifficulty))
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": blockchain.Verify(req.Block, req.Difficulty)})
}
