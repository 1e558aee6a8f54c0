package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// jobTimeout bounds a single refresh run
const jobTimeout = 30 * time.Second

// RateRefresher refreshes stored reference rates
type RateRefresher interface {
	RefreshCetesRate(ctx context.Context) error
}

// Scheduler runs periodic background jobs
type Scheduler struct {
	cron *cron.Cron
	log  *logrus.Logger
}

// NewScheduler registers the rate refresh job on spec, a six-field cron
// expression with seconds
func NewScheduler(spec string, refresher RateRefresher, log *logrus.Logger) (*Scheduler, error) {
	logger := cron.PrintfLogger(log)
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	s := &Scheduler{cron: c, log: log}
	if _, err := c.AddFunc(spec, func() { s.refresh(refresher) }); err != nil {
		return nil, fmt.Errorf("invalid rate refresh schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) refresh(refresher RateRefresher) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	if err := refresher.RefreshCetesRate(ctx); err != nil {
		s.log.WithError(err).Error("Scheduled CETES rate refresh failed")
		return
	}
	s.log.WithField("duration", time.Since(start)).Info("Scheduled CETES rate refresh completed")
}

// Start begins running jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Infof("Scheduler started with %d job(s)", len(s.cron.Entries()))
}

// Stop halts the scheduler and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("Scheduler stop timed out with jobs still running")
	}
}
