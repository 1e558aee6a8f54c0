package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dan9191/econosfera/internal/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("not found")

const schema = `
	CREATE SCHEMA IF NOT EXISTS econosfera;
	CREATE TABLE IF NOT EXISTS econosfera.scenarios (
		id         UUID PRIMARY KEY,
		kind       TEXT NOT NULL,
		name       TEXT NOT NULL,
		params     JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS scenarios_kind_created_idx
		ON econosfera.scenarios (kind, created_at DESC);
	CREATE TABLE IF NOT EXISTS econosfera.rate_snapshots (
		series      TEXT NOT NULL,
		observed_on DATE NOT NULL,
		value       DOUBLE PRECISION NOT NULL,
		fetched_at  TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (series, observed_on)
	);`

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the schema if it does not exist yet
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CreateScenario stores a new scenario, assigning its id and creation time
func (r *Repository) CreateScenario(ctx context.Context, s *models.Scenario) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	query := `
		INSERT INTO econosfera.scenarios (id, kind, name, params, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, s.ID, string(s.Kind), s.Name, []byte(s.Params)).
		Scan(&s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create scenario: %w", err)
	}
	return nil
}

// FindScenarioByID retrieves a scenario by id
func (r *Repository) FindScenarioByID(ctx context.Context, id uuid.UUID) (*models.Scenario, error) {
	s := &models.Scenario{}
	var kind string
	var params []byte
	query := `
		SELECT id, kind, name, params, created_at
		FROM econosfera.scenarios
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &kind, &s.Name, &params, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scenario %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find scenario: %w", err)
	}
	s.Kind = models.ScenarioKind(kind)
	s.Params = params
	return s, nil
}

// ListScenarios returns the newest scenarios, optionally of a single kind
func (r *Repository) ListScenarios(ctx context.Context, kind models.ScenarioKind, limit int) ([]models.Scenario, error) {
	query := `
		SELECT id, kind, name, params, created_at
		FROM econosfera.scenarios
		WHERE ($1 = '' OR kind = $1)
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	var out []models.Scenario
	for rows.Next() {
		var s models.Scenario
		var k string
		var params []byte
		if err := rows.Scan(&s.ID, &k, &s.Name, &params, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scenario: %w", err)
		}
		s.Kind = models.ScenarioKind(k)
		s.Params = params
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	return out, nil
}

// SaveRate upserts a reference rate observation
func (r *Repository) SaveRate(ctx context.Context, snap models.RateSnapshot) error {
	query := `
		INSERT INTO econosfera.rate_snapshots (series, observed_on, value, fetched_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (series, observed_on)
		DO UPDATE SET value = EXCLUDED.value, fetched_at = EXCLUDED.fetched_at`
	if _, err := r.db.ExecContext(ctx, query, snap.Series, snap.Date, snap.Value, snap.FetchedAt); err != nil {
		return fmt.Errorf("failed to save rate: %w", err)
	}
	return nil
}

// LatestRate retrieves the most recent observation of a series
func (r *Repository) LatestRate(ctx context.Context, series string) (*models.RateSnapshot, error) {
	snap := &models.RateSnapshot{}
	query := `
		SELECT series, observed_on, value, fetched_at
		FROM econosfera.rate_snapshots
		WHERE series = $1
		ORDER BY observed_on DESC
		LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, series).
		Scan(&snap.Series, &snap.Date, &snap.Value, &snap.FetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rate %s: %w", series, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find rate: %w", err)
	}
	return snap, nil
}
