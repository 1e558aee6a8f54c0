package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/Dan9191/econosfera/internal/charts"
	"github.com/Dan9191/econosfera/internal/config"
	"github.com/Dan9191/econosfera/internal/models"
	"github.com/Dan9191/econosfera/internal/report"
	"github.com/Dan9191/econosfera/internal/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	maxNameLength    = 120
)

// ErrInvalidInput marks requests rejected before any computation
var ErrInvalidInput = errors.New("invalid input")

// ErrUnavailable is returned when an optional dependency is not configured
var ErrUnavailable = errors.New("unavailable")

// Store persists scenarios and reference rates
type Store interface {
	CreateScenario(ctx context.Context, s *models.Scenario) error
	FindScenarioByID(ctx context.Context, id uuid.UUID) (*models.Scenario, error)
	ListScenarios(ctx context.Context, kind models.ScenarioKind, limit int) ([]models.Scenario, error)
	SaveRate(ctx context.Context, snap models.RateSnapshot) error
	LatestRate(ctx context.Context, series string) (*models.RateSnapshot, error)
}

// RateSource fetches published reference rates
type RateSource interface {
	GetCetesRate(ctx context.Context) (*models.RateSnapshot, error)
}

// ReportSender delivers rendered reports
type ReportSender interface {
	SendReport(to string, r report.Report) error
}

// Service handles business logic
type Service struct {
	store  Store
	rates  RateSource
	mailer ReportSender
	charts *charts.Cache
	log    *logrus.Logger
	config *config.Config
	now    func() time.Time

	mu    sync.RWMutex
	cetes *models.RateSnapshot
}

// NewService initializes a new service. rates and mailer may be nil, in which
// case the operations needing them return ErrUnavailable.
func NewService(store Store, rates RateSource, mailer ReportSender, log *logrus.Logger, cfg *config.Config) (*Service, error) {
	cache, err := charts.NewCache(cfg.ChartCacheSize)
	if err != nil {
		return nil, err
	}
	return &Service{
		store:  store,
		rates:  rates,
		mailer: mailer,
		charts: cache,
		log:    log,
		config: cfg,
		now:    time.Now,
	}, nil
}

// SaveScenario validates params by evaluating them and stores the scenario
func (s *Service) SaveScenario(ctx context.Context, kind models.ScenarioKind, name string, params []byte) (*models.Scenario, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > maxNameLength {
		return nil, fmt.Errorf("%w: name must have 1 to %d characters", ErrInvalidInput, maxNameLength)
	}
	if _, err := Evaluate(kind, params); err != nil {
		return nil, err
	}

	scenario := &models.Scenario{
		ID:     uuid.New(),
		Kind:   kind,
		Name:   name,
		Params: params,
	}
	if err := s.store.CreateScenario(ctx, scenario); err != nil {
		return nil, err
	}

	s.log.Infof("Scenario saved: %s (%s)", scenario.ID, scenario.Kind)
	return scenario, nil
}

// ScenarioEvaluation pairs a stored scenario with its recomputed results
type ScenarioEvaluation struct {
	Scenario   *models.Scenario `json:"scenario"`
	Evaluation *Evaluation      `json:"evaluation"`
}

// GetScenario loads a scenario and recomputes it
func (s *Service) GetScenario(ctx context.Context, id uuid.UUID) (*ScenarioEvaluation, error) {
	scenario, err := s.store.FindScenarioByID(ctx, id)
	if err != nil {
		return nil, err
	}
	eval, err := Evaluate(scenario.Kind, scenario.Params)
	if err != nil {
		return nil, fmt.Errorf("stored scenario %s no longer evaluates: %w", id, err)
	}
	return &ScenarioEvaluation{Scenario: scenario, Evaluation: eval}, nil
}

// ListScenarios returns recent scenarios, optionally filtered by kind
func (s *Service) ListScenarios(ctx context.Context, kind models.ScenarioKind, limit int) ([]models.Scenario, error) {
	if kind != "" && !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown scenario kind %q", ErrInvalidInput, kind)
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.store.ListScenarios(ctx, kind, limit)
}

// ShareLink is a signed, expiring reference to a scenario
type ShareLink struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ShareScenario issues a share token for an existing scenario
func (s *Service) ShareScenario(ctx context.Context, id uuid.UUID) (*ShareLink, error) {
	scenario, err := s.store.FindScenarioByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	token, err := utils.GenerateShareToken(scenario.ID, string(scenario.Kind), s.config.ShareSecret, s.config.ShareTokenTTL, now)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Share token issued for scenario %s", scenario.ID)
	return &ShareLink{Token: token, ExpiresAt: now.Add(s.config.ShareTokenTTL)}, nil
}

// OpenShared resolves a share token to its evaluated scenario
func (s *Service) OpenShared(ctx context.Context, token string) (*ScenarioEvaluation, error) {
	id, err := utils.ParseShareToken(token, s.config.ShareSecret, s.now())
	if err != nil {
		return nil, err
	}
	return s.GetScenario(ctx, id)
}

// Chart builds the named series, serving repeated requests from the cache
func (s *Service) Chart(name string, req ChartRequest) ([]models.Series, error) {
	build, err := chartBuilder(name, req)
	if err != nil {
		return nil, err
	}

	series, hit := s.charts.Get(charts.Key(name, req.cacheKey()), build)
	s.log.WithFields(logrus.Fields{"chart": name, "cached": hit}).Debug("Chart served")
	return series, nil
}

// CetesRate returns the latest known CETES yield, preferring memory, then
// the store, then a live fetch
func (s *Service) CetesRate(ctx context.Context) (*models.RateSnapshot, error) {
	s.mu.RLock()
	cached := s.cetes
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	if snap, err := s.store.LatestRate(ctx, s.config.CetesSeries); err == nil {
		s.setCetes(snap)
		return snap, nil
	}

	if err := s.RefreshCetesRate(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cetes, nil
}

// RefreshCetesRate fetches the current CETES yield and stores it
func (s *Service) RefreshCetesRate(ctx context.Context) error {
	if s.rates == nil {
		return fmt.Errorf("rate source: %w", ErrUnavailable)
	}

	snap, err := s.rates.GetCetesRate(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch CETES rate: %w", err)
	}
	if err := s.store.SaveRate(ctx, *snap); err != nil {
		// The in-memory copy is still updated.
		s.log.WithError(err).Warn("Failed to persist CETES rate")
	}
	s.setCetes(snap)
	return nil
}

func (s *Service) setCetes(snap *models.RateSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cetes == nil || !snap.Date.Before(s.cetes.Date) {
		s.cetes = snap
	}
}

// EmailReport evaluates params and mails the resulting report to a recipient
func (s *Service) EmailReport(kind models.ScenarioKind, params []byte, to string) error {
	if s.mailer == nil {
		return fmt.Errorf("mailer: %w", ErrUnavailable)
	}
	addr, err := mail.ParseAddress(to)
	if err != nil {
		return fmt.Errorf("%w: bad recipient: %v", ErrInvalidInput, err)
	}

	eval, err := Evaluate(kind, params)
	if err != nil {
		return err
	}
	if err := s.mailer.SendReport(addr.Address, eval.Report); err != nil {
		return err
	}

	s.log.Infof("Report %s emailed to %s", kind, addr.Address)
	return nil
}
