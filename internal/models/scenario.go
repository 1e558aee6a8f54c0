package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScenarioKind names the simulator a scenario belongs to
type ScenarioKind string

const (
	KindMacro      ScenarioKind = "macro"
	KindISLM       ScenarioKind = "islm"
	KindMarket     ScenarioKind = "market"
	KindElasticity ScenarioKind = "elasticity"
	KindBond       ScenarioKind = "bond"
	KindLoan       ScenarioKind = "loan"
	KindPortfolio  ScenarioKind = "portfolio"
)

// Valid reports whether k is a known simulator
func (k ScenarioKind) Valid() bool {
	switch k {
	case KindMacro, KindISLM, KindMarket, KindElasticity, KindBond, KindLoan, KindPortfolio:
		return true
	}
	return false
}

// Scenario represents a saved set of simulator parameters
type Scenario struct {
	ID        uuid.UUID       `json:"id"`
	Kind      ScenarioKind    `json:"kind"`
	Name      string          `json:"name"`
	Params    json.RawMessage `json:"params"`
	CreatedAt time.Time       `json:"created_at"`
}
