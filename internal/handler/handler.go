package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Dan9191/econosfera/internal/repository"
	"github.com/Dan9191/econosfera/internal/service"
	"github.com/Dan9191/econosfera/internal/utils"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register mounts every route on r
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/health", h.Health).Methods("GET")

	// Calculators
	r.HandleFunc("/calc/tax", h.Tax).Methods("POST")
	r.HandleFunc("/calc/price-control", h.PriceControl).Methods("POST")
	r.HandleFunc("/calc/finance/{op}", h.Finance).Methods("POST")
	r.HandleFunc("/calc/{kind}", h.Calculate).Methods("POST")

	// Charts
	r.HandleFunc("/charts", h.ListCharts).Methods("GET")
	r.HandleFunc("/charts/{name}", h.Chart).Methods("POST")

	// Scenarios
	r.HandleFunc("/scenarios", h.CreateScenario).Methods("POST")
	r.HandleFunc("/scenarios", h.ListScenarios).Methods("GET")
	r.HandleFunc("/scenarios/{id}", h.GetScenario).Methods("GET")
	r.HandleFunc("/scenarios/{id}/share", h.ShareScenario).Methods("POST")
	r.HandleFunc("/shared/{token}", h.OpenShared).Methods("GET")

	// Reference data
	r.HandleFunc("/rates/cetes", h.CetesRate).Methods("GET")
	r.HandleFunc("/catalog/formulas", h.Formulas).Methods("GET")
	r.HandleFunc("/catalog/formulas/{id}", h.Formula).Methods("GET")
	r.HandleFunc("/catalog/theories", h.Theories).Methods("GET")

	// Reports
	r.HandleFunc("/reports/{kind}", h.Report).Methods("POST")
	r.HandleFunc("/reports/{kind}/email", h.EmailReport).Methods("POST")

	// Blockchain demos
	r.HandleFunc("/blockchain/merkle", h.Merkle).Methods("POST")
	r.HandleFunc("/blockchain/mine", h.Mine).Methods("POST")
	r.HandleFunc("/blockchain/verify", h.Verify).Methods("POST")
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	return body, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	return service.Decode(body, dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		status = http.StatusInternalServerError
		buf.Reset()
		buf.WriteString(`{"error":"Internal server error"}` + "\n")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, utils.ErrInvalidShareToken):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		h.log.WithError(err).Error("Request failed")
		message = "Internal server error"
	}
	writeJSON(w, status, map[string]string{"error": message})
}
